package service

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-mail/mail/v2"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

type EmailSender struct {
	dialer  *mail.Dialer
	logger  *logrus.Logger
	enabled bool
}

func NewEmailSender(logger *logrus.Logger) *EmailSender {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	enabledStr := os.Getenv("EMAIL_SENDER_ENABLED")
	isInsecureSkipVerifyStr := os.Getenv("INSECURE_SKIP_VERIFY")

	enabled := enabledStr == "true"
	if !enabled {
		return &EmailSender{logger: logger, enabled: false}
	}

	// Преобразуем smtpPort в int
	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		logger.Fatalf("Ошибка преобразования SMTP_PORT: %v", err)
	}
	isInsecureSkipVerify := isInsecureSkipVerifyStr == "true"
	d := mail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	d.TLSConfig = &tls.Config{
		ServerName:         smtpHost,
		InsecureSkipVerify: isInsecureSkipVerify,
	}
	return &EmailSender{
		dialer:  d,
		logger:  logger,
		enabled: enabled,
	}
}

// SendDailyHoroscope отправляет ежедневный гороскоп на указанный адрес
func (es *EmailSender) SendDailyHoroscope(email string, period *model.HoroscopePeriod) error {
	if !es.enabled {
		es.logger.Warn("Отправка уведомлений отключена")
		return nil
	}

	subject := fmt.Sprintf("Гороскоп на %s (%s)", period.Range.Start.Format("02.01.2006"), period.AnimalSign)
	content := fmt.Sprintf(`
		<h1>Гороскоп на день</h1>
		<p>Знак: <strong>%s</strong></p>
		<p>Оценка дня: <strong>%.2f (%s)</strong></p>
		<p>%s</p>
		%s
		<p>Фаза Луны: <strong>%s</strong></p>
		<small>Это автоматическое уведомление, пожалуйста, не отвечайте на него</small>
	`, period.AnimalSign, period.Overall.Score, period.Overall.Rating,
		period.Overall.Summary, categoriesHTML(period), period.Lunar.Phase)

	return es.sendEmail(email, subject, content)
}

func categoriesHTML(period *model.HoroscopePeriod) string {
	var b strings.Builder
	for _, category := range []string{
		model.CategoryWealth, model.CategoryCareer, model.CategoryHealth,
		model.CategoryRelationships, model.CategoryFamily, model.CategorySpiritual,
	} {
		pred, ok := period.Categories[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "<p><strong>%s</strong>: %s</p>\n", category, pred.Prediction)
	}
	return b.String()
}

func (es *EmailSender) sendEmail(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		es.logger.WithError(err).Error("Ошибка отправки email")
		return fmt.Errorf("не удалось отправить email: %w", err)
	}

	es.logger.Infof("Email успешно отправлен на %s", to)
	return nil
}
