package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/cache"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// CompatibilityService считает совместимость знаков зодиака с кэшем пар и
// опциональной предрасчитанной матрицей всех 66 сочетаний
type CompatibilityService struct {
	pairCache *cache.Cache
	matrix    map[string]*model.CompatibilityResult
	logger    *logrus.Logger
}

func NewCompatibilityService(pairCache *cache.Cache, precompute bool, logger *logrus.Logger) (*CompatibilityService, error) {
	s := &CompatibilityService{
		pairCache: pairCache,
		logger:    logger,
	}

	if precompute {
		matrix, err := astro.CompatibilityMatrix(astro.CompatibilityOptions{})
		if err != nil {
			return nil, fmt.Errorf("предрасчёт матрицы совместимости: %w", err)
		}
		s.matrix = matrix
		logger.WithField("pairs", len(matrix)).Info("Матрица совместимости предрасчитана")
	}

	return s, nil
}

// Calculate возвращает совместимость пары знаков: сначала матрица, затем
// кэш, в последнюю очередь прямой расчёт
func (s *CompatibilityService) Calculate(sign1, sign2 model.Animal, opts astro.CompatibilityOptions) (*model.CompatibilityResult, error) {
	key := astro.PairKey(sign1, sign2)
	key = fmt.Sprintf("%s|%v|%v", key, opts.IncludePolarity, opts.IncludeDirection)

	if s.matrix != nil && !opts.IncludePolarity && !opts.IncludeDirection {
		if result, ok := s.matrix[astro.PairKey(sign1, sign2)]; ok {
			return result, nil
		}
	}

	if s.pairCache != nil {
		if cached, ok := s.pairCache.Get(key); ok {
			return cached.(*model.CompatibilityResult), nil
		}
	}

	result, err := astro.CalculateCompatibility(sign1, sign2, opts)
	if err != nil {
		return nil, err
	}

	if s.pairCache != nil {
		s.pairCache.Set(key, result)
	}

	s.logger.WithFields(logrus.Fields{
		"sign1": sign1,
		"sign2": sign2,
		"score": result.OverallScore,
	}).Debug("Совместимость рассчитана")

	return result, nil
}

// Trends возвращает сводку совместимости одного знака со всеми остальными
func (s *CompatibilityService) Trends(sign model.Animal) (*model.CompatibilityTrends, error) {
	trends, err := astro.CompatibilityTrends(sign, astro.CompatibilityOptions{})
	if err != nil {
		return nil, fmt.Errorf("тренды совместимости для %s: %w", sign, err)
	}
	return trends, nil
}
