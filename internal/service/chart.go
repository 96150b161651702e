package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/cache"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/repository"
)

// ChartService - оркестратор построения карты рождения: валидация,
// последовательный запуск калькуляторов, сборка интерпретации, кэш и архив
type ChartService struct {
	chartRepo *repository.ChartRepository
	cache     *cache.Cache
	logger    *logrus.Logger
}

func NewChartService(chartRepo *repository.ChartRepository, chartCache *cache.Cache, logger *logrus.Logger) *ChartService {
	return &ChartService{
		chartRepo: chartRepo,
		cache:     chartCache,
		logger:    logger,
	}
}

// GenerateBirthChart строит полную карту рождения по моменту рождения.
// Ошибки валидации возвращаются как есть; сбои калькуляторов
// оборачиваются с контекстом этапа.
func (s *ChartService) GenerateBirthChart(ctx context.Context, birth model.BirthMoment) (*model.BirthChart, error) {
	correlationID := uuid.New()
	started := time.Now()

	s.logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"birth":          birth.CacheKey(),
	}).Info("Запрос построения карты рождения")

	if err := birth.Validate(); err != nil {
		s.logger.WithError(err).WithField("correlation_id", correlationID).
			Warn("Момент рождения не прошёл валидацию")
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(birth.CacheKey()); ok {
			s.logger.WithField("correlation_id", correlationID).Debug("Карта найдена в кэше")
			return cached.(*model.BirthChart), nil
		}
	}

	pillars, err := astro.CalculateBaZi(birth)
	if err != nil {
		s.logger.WithError(err).WithField("correlation_id", correlationID).Error("Ошибка расчёта Ба-Цзы")
		return nil, fmt.Errorf("расчёт четырёх столпов: %w", err)
	}

	balance, err := astro.AnalyzeElements(pillars)
	if err != nil {
		s.logger.WithError(err).WithField("correlation_id", correlationID).Error("Ошибка анализа стихий")
		return nil, fmt.Errorf("анализ баланса стихий: %w", err)
	}

	nineStar := astro.CalculateNineStar(birth.Year, time.Now().UTC().Year())

	birthDate := time.Date(birth.Year, time.Month(birth.Month), birth.Day,
		birth.Hour, birth.Minute, birth.Second, 0, time.UTC)
	lunar := astro.LunarData(birthDate)

	term, err := astro.CurrentSolarTerm(birthDate)
	if err != nil {
		s.logger.WithError(err).WithField("correlation_id", correlationID).Error("Солнечный термин не найден")
		return nil, fmt.Errorf("поиск солнечного термина: %w", err)
	}

	chart := &model.BirthChart{
		ID:             uuid.New(),
		Birth:          birth,
		Pillars:        *pillars,
		Elements:       balance,
		NineStar:       nineStar,
		Lunar:          lunar,
		SolarTerm:      term,
		Interpretation: buildInterpretation(pillars, balance, nineStar),
		CreatedAt:      time.Now().UTC(),
	}

	if s.cache != nil {
		s.cache.Set(birth.CacheKey(), chart)
	}

	// Архивирование - побочная забота: сбой записи не ломает ответ
	if s.chartRepo != nil {
		if err := s.chartRepo.Create(ctx, chart); err != nil {
			s.logger.WithError(err).WithField("correlation_id", correlationID).
				Warn("Не удалось сохранить карту в архив")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"chart_id":       chart.ID,
		"duration_ms":    time.Since(started).Milliseconds(),
		"strongest":      balance.Strongest,
		"balance":        balance.Balance,
	}).Info("Карта рождения построена")

	return chart, nil
}

// GetChart возвращает карту из архива по идентификатору
func (s *ChartService) GetChart(ctx context.Context, id uuid.UUID) (*model.BirthChart, error) {
	if s.chartRepo == nil {
		return nil, model.ErrChartNotFound
	}
	chart, err := s.chartRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrChartNotFound) {
			return nil, err
		}
		s.logger.WithError(err).Errorf("Ошибка получения карты %s", id)
		return nil, fmt.Errorf("получение карты: %w", err)
	}
	return chart, nil
}

// buildInterpretation собирает текстовую интерпретацию из господина дня,
// баланса стихий и черт звезды рождения
func buildInterpretation(chart *model.FourPillarsChart, balance *model.ElementBalance, nineStar *model.NineStarProfile) model.Interpretation {
	dayMaster := chart.Day.Element
	return model.Interpretation{
		Personality: fmt.Sprintf("A %s day master born in the year of the %s: %s",
			dayMaster, chart.Year.Animal, nineStar.Traits.Personality),
		Strengths: fmt.Sprintf("Dominant %s (%s) lends natural momentum in matters of that element.",
			balance.Strongest, balance.Balance),
		Challenges: fmt.Sprintf("Underrepresented %s calls for conscious compensation.",
			balance.Weakest),
		LifeFocus: nineStar.Traits.Career,
	}
}
