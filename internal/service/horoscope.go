package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// HoroscopeService генерирует гороскопы по карте четырёх столпов
type HoroscopeService struct {
	almanac *AlmanacClient
	logger  *logrus.Logger
}

func NewHoroscopeService(almanac *AlmanacClient, logger *logrus.Logger) *HoroscopeService {
	return &HoroscopeService{
		almanac: almanac,
		logger:  logger,
	}
}

// Generate строит гороскоп одного таймфрейма
func (s *HoroscopeService) Generate(chart *model.FourPillarsChart, htype model.HoroscopeType, date time.Time) (*model.HoroscopePeriod, error) {
	if chart == nil {
		return nil, model.ErrNoChart
	}

	s.logger.WithFields(logrus.Fields{
		"type": htype,
		"date": date.Format("2006-01-02"),
	}).Debug("Генерация гороскопа")

	period, err := astro.GenerateHoroscope(chart, htype, date)
	if err != nil {
		s.logger.WithError(err).Errorf("Ошибка генерации гороскопа %s", htype)
		return nil, fmt.Errorf("генерация гороскопа %s: %w", htype, err)
	}

	// Для годового таймфрейма уточняем дату Нового года по внешнему
	// альманаху; при недоступности остаётся внутренняя аппроксимация
	if htype == model.HoroscopeYearly && s.almanac != nil && period.Yearly != nil {
		if newYear, err := s.almanac.GetNewYearDate(date.Year()); err != nil {
			s.logger.WithError(err).Warn("Альманах недоступен, используется приближённая дата Нового года")
		} else {
			period.Yearly.NewYearDate = newYear
		}
	}

	return period, nil
}

// GenerateAll строит все четыре таймфрейма конкурентно: генераторы делят
// только неизменяемые карту и таблицы, гонок по данным нет
func (s *HoroscopeService) GenerateAll(chart *model.FourPillarsChart, date time.Time) (map[model.HoroscopeType]*model.HoroscopePeriod, error) {
	if chart == nil {
		return nil, model.ErrNoChart
	}

	types := []model.HoroscopeType{
		model.HoroscopeDaily, model.HoroscopeWeekly, model.HoroscopeMonthly, model.HoroscopeYearly,
	}

	periods := make([]*model.HoroscopePeriod, len(types))
	errs := make([]error, len(types))

	var wg sync.WaitGroup
	for i, htype := range types {
		wg.Add(1)
		go func(i int, htype model.HoroscopeType) {
			defer wg.Done()
			periods[i], errs[i] = s.Generate(chart, htype, date)
		}(i, htype)
	}
	wg.Wait()

	result := make(map[model.HoroscopeType]*model.HoroscopePeriod, len(types))
	for i, htype := range types {
		if errs[i] != nil {
			return nil, fmt.Errorf("генерация %s: %w", htype, errs[i])
		}
		result[htype] = periods[i]
	}
	return result, nil
}

// ChineseHoroscopeSystem - фасад с предварительно заданной картой: сначала
// SetChart, затем генерация; без карты возвращается ErrNoChart
type ChineseHoroscopeSystem struct {
	service *HoroscopeService
	mu      sync.RWMutex
	chart   *model.FourPillarsChart
}

func NewChineseHoroscopeSystem(service *HoroscopeService) *ChineseHoroscopeSystem {
	return &ChineseHoroscopeSystem{service: service}
}

// SetChart задаёт карту для последующих генераций
func (h *ChineseHoroscopeSystem) SetChart(chart *model.FourPillarsChart) error {
	if err := astro.ValidateChart(chart); err != nil {
		return err
	}
	h.mu.Lock()
	h.chart = chart
	h.mu.Unlock()
	return nil
}

// GenerateHoroscope строит гороскоп заданного таймфрейма по заданной карте
func (h *ChineseHoroscopeSystem) GenerateHoroscope(htype model.HoroscopeType, date time.Time) (*model.HoroscopePeriod, error) {
	h.mu.RLock()
	chart := h.chart
	h.mu.RUnlock()
	if chart == nil {
		return nil, model.ErrNoChart
	}
	return h.service.Generate(chart, htype, date)
}

// GenerateAllHoroscopes строит все четыре таймфрейма по заданной карте
func (h *ChineseHoroscopeSystem) GenerateAllHoroscopes(date time.Time) (map[model.HoroscopeType]*model.HoroscopePeriod, error) {
	h.mu.RLock()
	chart := h.chart
	h.mu.RUnlock()
	if chart == nil {
		return nil, model.ErrNoChart
	}
	return h.service.GenerateAll(chart, date)
}
