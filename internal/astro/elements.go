package astro

import (
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Веса вкладов в баланс стихий
const (
	pillarWeight = 1.0
	branchWeight = 0.5
)

// AnalyzeElements накапливает счётчики стихий по четырём столпам (первичные
// стихии с весом 1.0, вторичные стихии ветвей с весом 0.5), находит
// сильнейшую и слабейшую стихии и классифицирует баланс по разбросу.
func AnalyzeElements(chart *model.FourPillarsChart) (*model.ElementBalance, error) {
	if chart == nil {
		return nil, model.ErrNoChart
	}
	if err := ValidateChart(chart); err != nil {
		return nil, err
	}

	counts := make(map[model.Element]float64, len(ElementOrder))
	for _, e := range ElementOrder {
		counts[e] = 0
	}

	for _, p := range chart.Pillars() {
		counts[p.Element] += pillarWeight
		secondary, err := BranchElement(p.Branch)
		if err != nil {
			return nil, err
		}
		counts[secondary] += branchWeight
	}

	// Ничьи разрешаются первым встреченным в фиксированном порядке обхода
	strongest, weakest := ElementOrder[0], ElementOrder[0]
	for _, e := range ElementOrder {
		if counts[e] > counts[strongest] {
			strongest = e
		}
		if counts[e] < counts[weakest] {
			weakest = e
		}
	}

	relationships := make(map[model.Element]model.ElementRelation, len(ElementOrder))
	for _, e := range ElementOrder {
		relationships[e] = model.ElementRelation{
			Generates:    Generates(e),
			GeneratedBy:  GeneratedBy(e),
			Controls:     Controls(e),
			ControlledBy: ControlledBy(e),
		}
	}

	return &model.ElementBalance{
		Counts:        counts,
		Strongest:     strongest,
		Weakest:       weakest,
		Balance:       classifyBalance(counts[strongest] - counts[weakest]),
		Relationships: relationships,
	}, nil
}

// classifyBalance распределяет разброс max-min по 5 полосам
func classifyBalance(spread float64) model.BalanceClass {
	switch {
	case spread <= 0.5:
		return model.BalanceWell
	case spread <= 1.0:
		return model.BalanceMostly
	case spread <= 1.5:
		return model.BalanceSlightly
	case spread <= 2.0:
		return model.BalanceUneven
	default:
		return model.BalanceSeverely
	}
}

// ElementCompatibility - направленный балл совместимости пары стихий.
// Порождение и контроль направлены, поэтому функция асимметрична:
// e1 порождает e2 даёт 0.8, обратное - 0.6.
func ElementCompatibility(e1, e2 model.Element) float64 {
	switch {
	case e1 == e2:
		return 1.0
	case Generates(e1) == e2:
		return 0.8
	case Generates(e2) == e1:
		return 0.6
	case Controls(e1) == e2:
		return -0.5
	case Controls(e2) == e1:
		return -0.7
	default:
		return 0
	}
}

// Корректирующие рекомендации, ключ - самая слабая стихия
var remedies = map[model.Element]model.Remedy{
	model.ElementWood: {
		Element:    model.ElementWood,
		Colors:     []string{"green", "teal"},
		Materials:  []string{"wood", "bamboo", "living plants"},
		Directions: []string{"east", "southeast"},
		Advice:     "Spend time among trees and growing things; start something new.",
	},
	model.ElementFire: {
		Element:    model.ElementFire,
		Colors:     []string{"red", "orange", "purple"},
		Materials:  []string{"candles", "lights", "sun-dried goods"},
		Directions: []string{"south"},
		Advice:     "Seek sunlight and warmth; express yourself openly.",
	},
	model.ElementEarth: {
		Element:    model.ElementEarth,
		Colors:     []string{"yellow", "brown", "beige"},
		Materials:  []string{"ceramics", "clay", "natural stone"},
		Directions: []string{"center", "southwest", "northeast"},
		Advice:     "Ground yourself with routine; tend to home and stability.",
	},
	model.ElementMetal: {
		Element:    model.ElementMetal,
		Colors:     []string{"white", "gold", "silver"},
		Materials:  []string{"metal ornaments", "coins", "crystals"},
		Directions: []string{"west", "northwest"},
		Advice:     "Bring order and precision to your affairs; finish what is open.",
	},
	model.ElementWater: {
		Element:    model.ElementWater,
		Colors:     []string{"black", "blue"},
		Materials:  []string{"fountains", "glass", "mirrors"},
		Directions: []string{"north"},
		Advice:     "Stay adaptable; nourish wisdom through study and rest.",
	},
}

// SuggestRemedies возвращает рекомендации для самой слабой стихии баланса
func SuggestRemedies(balance *model.ElementBalance) model.Remedy {
	if balance == nil {
		return model.Remedy{}
	}
	return remedies[balance.Weakest]
}
