package model

import (
	"time"

	"github.com/google/uuid"
)

// Interpretation - текстовая интерпретация собранной карты
type Interpretation struct {
	Personality string `json:"personality"`
	Strengths   string `json:"strengths"`
	Challenges  string `json:"challenges"`
	LifeFocus   string `json:"life_focus"`
}

// BirthChart - итоговая карта рождения, собранная оркестратором
type BirthChart struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	Birth          BirthMoment      `json:"birth"`
	Pillars        FourPillarsChart `json:"pillars"`
	Elements       *ElementBalance  `json:"elements"`
	NineStar       *NineStarProfile `json:"nine_star"`
	Lunar          LunarData        `json:"lunar"`
	SolarTerm      SolarTerm        `json:"solar_term"`
	Interpretation Interpretation   `json:"interpretation"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}

// HoroscopeRequest - запрос генерации гороскопа
type HoroscopeRequest struct {
	Birth BirthMoment `json:"birth" validate:"required"`
	Date  string      `json:"date,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
}

// Каналы доставки подписок
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Subscription - подписка на ежедневный гороскоп
type Subscription struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Channel   string      `json:"channel" db:"channel"` // email, telegram
	Address   string      `json:"address" db:"address"`
	ChatID    int64       `json:"chat_id" db:"chat_id"`
	Birth     BirthMoment `json:"birth"`
	Active    bool        `json:"active" db:"active"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// Validate проверяет подписку перед сохранением
func (s *Subscription) Validate() error {
	switch s.Channel {
	case ChannelEmail:
		if s.Address == "" {
			return NewValidationError("address", "для канала email требуется адрес")
		}
	case ChannelTelegram:
		if s.ChatID == 0 {
			return NewValidationError("chat_id", "для канала telegram требуется идентификатор чата")
		}
	default:
		return NewValidationError("channel", "канал должен быть email или telegram")
	}
	return s.Birth.Validate()
}
