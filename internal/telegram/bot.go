package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/repository"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/service"
)

// Bot - Telegram-канал доставки гороскопов: команды по запросу плюс
// реализация service.Messenger для ежедневной рассылки
type Bot struct {
	bot           *tgbotapi.BotAPI
	subRepo       *repository.SubscriptionRepository
	chartService  *service.ChartService
	horoscope     *service.HoroscopeService
	compatService *service.CompatibilityService
	handlers      map[string]func(*tgbotapi.Message)
	logger        *logrus.Logger
}

func NewBot(
	token string,
	subRepo *repository.SubscriptionRepository,
	chartService *service.ChartService,
	horoscope *service.HoroscopeService,
	compatService *service.CompatibilityService,
	logger *logrus.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %v", err)
	}

	bot := &Bot{
		bot:           botAPI,
		subRepo:       subRepo,
		chartService:  chartService,
		horoscope:     horoscope,
		compatService: compatService,
		handlers:      make(map[string]func(*tgbotapi.Message)),
		logger:        logger,
	}

	bot.registerHandlers()
	logger.Infof("Бот инициализирован: %s", botAPI.Self.UserName)
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.handlers["/start"] = b.handleStart
	b.handlers["/birth"] = b.handleBirth
	b.handlers["/today"] = b.handleToday
	b.handlers["/chart"] = b.handleChart
	b.handlers["/compat"] = b.handleCompat
	b.handlers["/stop"] = b.handleStop
	b.handlers["/help"] = b.handleHelp
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	command := strings.Fields(update.Message.Text)
	if len(command) == 0 {
		return
	}

	handler, ok := b.handlers[command[0]]
	if !ok {
		b.sendMessage(update.Message.Chat.ID, "Неизвестная команда, отправьте /help")
		return
	}
	handler(update.Message)
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.WithError(err).Error("Ошибка отправки сообщения в Telegram")
		return err
	}
	return nil
}

// SendDailyHoroscope реализует service.Messenger для ежедневной рассылки
func (b *Bot) SendDailyHoroscope(chatID int64, period *model.HoroscopePeriod) error {
	return b.sendMessage(chatID, formatDaily(period))
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID,
		"Привет! Я считаю карты Ба-Цзы и ежедневные гороскопы.\n"+
			"Задайте момент рождения командой:\n"+
			"<code>/birth 1990-05-15 14:30 +3</code>\n"+
			"После этого доступны /today и /chart, а ежедневный гороскоп будет приходить автоматически.")
}

// handleBirth разбирает момент рождения и создаёт подписку чата
func (b *Bot) handleBirth(msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)
	if len(parts) < 3 {
		b.sendMessage(msg.Chat.ID, "Формат: /birth YYYY-MM-DD HH:MM [+TZ]")
		return
	}

	birthTime, err := time.Parse("2006-01-02 15:04", parts[1]+" "+parts[2])
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Не удалось разобрать дату и время, формат: /birth YYYY-MM-DD HH:MM [+TZ]")
		return
	}

	tz := 0.0
	if len(parts) >= 4 {
		if _, err := fmt.Sscanf(parts[3], "%f", &tz); err != nil {
			b.sendMessage(msg.Chat.ID, "Не удалось разобрать часовой пояс, пример: +3 или -5.5")
			return
		}
	}

	sub := model.Subscription{
		ID:      uuid.New(),
		Channel: model.ChannelTelegram,
		ChatID:  msg.Chat.ID,
		Birth: model.BirthMoment{
			Year:           birthTime.Year(),
			Month:          int(birthTime.Month()),
			Day:            birthTime.Day(),
			Hour:           birthTime.Hour(),
			Minute:         birthTime.Minute(),
			TimezoneOffset: tz,
		},
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := sub.Validate(); err != nil {
		b.sendMessage(msg.Chat.ID, "Некорректный момент рождения: "+err.Error())
		return
	}

	if err := b.subRepo.Create(context.Background(), &sub); err != nil {
		b.logger.WithError(err).Error("Ошибка создания подписки из Telegram")
		b.sendMessage(msg.Chat.ID, "Не удалось сохранить подписку, попробуйте позже")
		return
	}

	b.sendMessage(msg.Chat.ID, "Момент рождения сохранён, подписка на ежедневный гороскоп активна")
}

func (b *Bot) handleToday(msg *tgbotapi.Message) {
	sub, err := b.subRepo.GetByChatID(context.Background(), msg.Chat.ID)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Момент рождения не задан, отправьте /birth")
		return
	}

	chart, err := b.chartService.GenerateBirthChart(context.Background(), sub.Birth)
	if err != nil {
		b.logger.WithError(err).Error("Ошибка построения карты для Telegram")
		b.sendMessage(msg.Chat.ID, "Не удалось построить карту, попробуйте позже")
		return
	}

	period, err := b.horoscope.Generate(&chart.Pillars, model.HoroscopeDaily, time.Now().UTC())
	if err != nil {
		b.logger.WithError(err).Error("Ошибка генерации гороскопа для Telegram")
		b.sendMessage(msg.Chat.ID, "Не удалось построить гороскоп, попробуйте позже")
		return
	}

	b.sendMessage(msg.Chat.ID, formatDaily(period))
}

func (b *Bot) handleChart(msg *tgbotapi.Message) {
	sub, err := b.subRepo.GetByChatID(context.Background(), msg.Chat.ID)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Момент рождения не задан, отправьте /birth")
		return
	}

	chart, err := b.chartService.GenerateBirthChart(context.Background(), sub.Birth)
	if err != nil {
		b.logger.WithError(err).Error("Ошибка построения карты для Telegram")
		b.sendMessage(msg.Chat.ID, "Не удалось построить карту, попробуйте позже")
		return
	}

	b.sendMessage(msg.Chat.ID, formatChart(chart))
}

func (b *Bot) handleCompat(msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)
	if len(parts) != 3 {
		b.sendMessage(msg.Chat.ID, "Формат: /compat Rat Dragon")
		return
	}

	result, err := b.compatService.Calculate(
		model.Animal(parts[1]), model.Animal(parts[2]), astro.CompatibilityOptions{})
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Не удалось рассчитать совместимость: "+err.Error())
		return
	}

	b.sendMessage(msg.Chat.ID, formatCompatibility(result))
}

func (b *Bot) handleStop(msg *tgbotapi.Message) {
	sub, err := b.subRepo.GetByChatID(context.Background(), msg.Chat.ID)
	if err != nil {
		b.sendMessage(msg.Chat.ID, "Активной подписки нет")
		return
	}

	if err := b.subRepo.Deactivate(context.Background(), sub.ID); err != nil {
		b.logger.WithError(err).Error("Ошибка отключения подписки из Telegram")
		b.sendMessage(msg.Chat.ID, "Не удалось отключить подписку, попробуйте позже")
		return
	}

	b.sendMessage(msg.Chat.ID, "Подписка отключена")
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.sendMessage(msg.Chat.ID,
		"/birth YYYY-MM-DD HH:MM [+TZ] - задать момент рождения\n"+
			"/today - гороскоп на сегодня\n"+
			"/chart - карта четырёх столпов\n"+
			"/compat Rat Dragon - совместимость знаков\n"+
			"/stop - отключить ежедневную рассылку")
}
