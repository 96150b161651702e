package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

type AlmanacClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewAlmanacClient создаёт клиента внешнего астрономического альманаха
func NewAlmanacClient(baseURL string, logger *logrus.Logger) *AlmanacClient {
	return &AlmanacClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// fetchAlmanac запрашивает альманах за указанный год и возвращает сырой ответ
func (c *AlmanacClient) fetchAlmanac(year int) ([]byte, error) {
	url := fmt.Sprintf("%s/almanac?year=%d", c.baseURL, year)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выполнении HTTP-запроса: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("альманах вернул статус %d", resp.StatusCode)
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении ответа: %v", err)
	}

	return rawBody, nil
}

// parseNewYearDate извлекает дату лунного Нового года из XML-ответа
func parseNewYearDate(rawBody []byte) (time.Time, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return time.Time{}, fmt.Errorf("ошибка при разборе XML: %v", err)
	}

	element := doc.FindElement("//almanac/lunarNewYear")
	if element == nil {
		return time.Time{}, errors.New("элемент <lunarNewYear> отсутствует в XML-ответе")
	}

	dateStr := element.SelectAttrValue("date", "")
	if dateStr == "" {
		return time.Time{}, errors.New("атрибут date отсутствует в элементе <lunarNewYear>")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("ошибка при преобразовании даты: %v", err)
	}

	return date, nil
}

// GetNewYearDate получает дату лунного Нового года из внешнего альманаха
func (c *AlmanacClient) GetNewYearDate(year int) (time.Time, error) {
	c.logger.WithField("year", year).Info("Запрос даты лунного Нового года из альманаха...")

	rawBody, err := c.fetchAlmanac(year)
	if err != nil {
		c.logger.WithError(err).Error("Ошибка при запросе альманаха")
		return time.Time{}, err
	}
	c.logger.Debug("Ответ альманаха успешно получен")

	date, err := parseNewYearDate(rawBody)
	if err != nil {
		c.logger.WithError(err).Error("Ошибка при разборе XML-ответа альманаха")
		return time.Time{}, err
	}

	c.logger.WithField("new_year", date.Format("2006-01-02")).Info("Дата лунного Нового года получена")
	return date, nil
}
