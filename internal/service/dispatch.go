package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/repository"
)

// Messenger доставляет текст гороскопа в чат мессенджера
type Messenger interface {
	SendDailyHoroscope(chatID int64, period *model.HoroscopePeriod) error
}

// DispatchService рассылает ежедневные гороскопы активным подписчикам
type DispatchService struct {
	subRepo      *repository.SubscriptionRepository
	chartService *ChartService
	horoscope    *HoroscopeService
	emailSender  *EmailSender
	messenger    Messenger
	logger       *logrus.Logger
}

func NewDispatchService(
	subRepo *repository.SubscriptionRepository,
	chartService *ChartService,
	horoscope *HoroscopeService,
	emailSender *EmailSender,
	messenger Messenger,
	logger *logrus.Logger,
) *DispatchService {
	return &DispatchService{
		subRepo:      subRepo,
		chartService: chartService,
		horoscope:    horoscope,
		emailSender:  emailSender,
		messenger:    messenger,
		logger:       logger,
	}
}

// DispatchDaily строит и рассылает ежедневные гороскопы по всем активным
// подпискам; ошибка одной подписки не останавливает рассылку остальных
func (s *DispatchService) DispatchDaily(ctx context.Context) {
	s.logger.Info("Запуск ежедневной рассылки гороскопов...")

	subs, err := s.subRepo.GetActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Ошибка получения активных подписок")
		return
	}
	if len(subs) == 0 {
		s.logger.Info("Активных подписок нет, рассылка пропущена")
		return
	}

	today := time.Now().UTC()
	sent := 0
	for _, sub := range subs {
		if err := s.dispatchOne(ctx, sub, today); err != nil {
			s.logger.WithError(err).WithField("subscription_id", sub.ID).
				Error("Ошибка доставки гороскопа подписчику")
			continue
		}
		sent++
	}

	s.logger.WithFields(logrus.Fields{
		"total": len(subs),
		"sent":  sent,
	}).Info("Ежедневная рассылка завершена")
}

func (s *DispatchService) dispatchOne(ctx context.Context, sub model.Subscription, date time.Time) error {
	birthChart, err := s.chartService.GenerateBirthChart(ctx, sub.Birth)
	if err != nil {
		return err
	}

	period, err := s.horoscope.Generate(&birthChart.Pillars, model.HoroscopeDaily, date)
	if err != nil {
		return err
	}

	switch sub.Channel {
	case model.ChannelEmail:
		if s.emailSender == nil {
			s.logger.Warn("Email-канал не настроен, подписка пропущена")
			return nil
		}
		return s.emailSender.SendDailyHoroscope(sub.Address, period)
	case model.ChannelTelegram:
		if s.messenger == nil {
			s.logger.Warn("Telegram-канал не настроен, подписка пропущена")
			return nil
		}
		return s.messenger.SendDailyHoroscope(sub.ChatID, period)
	default:
		s.logger.WithField("channel", sub.Channel).Warn("Неизвестный канал доставки")
		return nil
	}
}
