package astro

import (
	"fmt"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Веса слагаемых общего балла
const (
	lunarWeight   = 0.3
	elementWeight = 0.4
	animalWeight  = 0.3
)

// Фиксированные веса лунных фаз
var lunarPhaseWeights = map[string]float64{
	"New Moon":        0.6,
	"Waxing Crescent": 0.5,
	"First Quarter":   0.7,
	"Waxing Gibbous":  0.8,
	"Full Moon":       1.0,
	"Waning Gibbous":  0.7,
	"Last Quarter":    0.6,
	"Waning Crescent": 0.4,
}

// Пары стихий по категориям жизни: балл категории - среднее счётчиков пары
var categoryElements = map[string][2]model.Element{
	model.CategoryWealth:        {model.ElementEarth, model.ElementMetal},
	model.CategoryCareer:        {model.ElementMetal, model.ElementWater},
	model.CategoryHealth:        {model.ElementWood, model.ElementWater},
	model.CategoryRelationships: {model.ElementFire, model.ElementEarth},
	model.CategoryFamily:        {model.ElementEarth, model.ElementWood},
	model.CategorySpiritual:     {model.ElementFire, model.ElementWater},
}

type categoryTexts struct {
	prediction string
	advice     string
}

// Шаблонные тексты прогнозов по категориям и уровням (high/medium/low)
var categoryTemplates = map[string]map[string]categoryTexts{
	model.CategoryWealth: {
		"high":   {"Material matters flow in your favor; accumulated effort pays off.", "Invest surplus into lasting assets rather than quick wins."},
		"medium": {"Finances hold steady with no dramatic swings.", "Review budgets and postpone large discretionary purchases."},
		"low":    {"Resources feel tight; unexpected costs are possible.", "Avoid speculation and keep a cash reserve at hand."},
	},
	model.CategoryCareer: {
		"high":   {"Professional momentum builds; your work is visible to the right people.", "Put forward the proposal you have been sitting on."},
		"medium": {"Work proceeds at a measured pace without major turns.", "Consolidate skills; quiet preparation precedes the next move."},
		"low":    {"Friction at work may test your patience.", "Do not force decisions; document your contributions and wait."},
	},
	model.CategoryHealth: {
		"high":   {"Vitality runs high and recovery comes easily.", "Channel the surplus energy into regular exercise."},
		"medium": {"Health is stable but reserves are not unlimited.", "Keep sleep regular and meals unhurried."},
		"low":    {"Energy dips; minor ailments may surface.", "Slow the schedule and attend to rest before it is forced on you."},
	},
	model.CategoryRelationships: {
		"high":   {"Bonds warm easily; misunderstandings dissolve in conversation.", "Say the appreciative thing out loud instead of assuming it is known."},
		"medium": {"Relationships stay on familiar ground.", "Small shared rituals keep the connection nourished."},
		"low":    {"Sensitivities run close to the surface with loved ones.", "Listen longer than feels natural before replying."},
	},
	model.CategoryFamily: {
		"high":   {"Family life is a source of strength and good news.", "Gather people; shared meals multiply the harmony."},
		"medium": {"Domestic matters tick along without drama.", "Handle small household repairs before they grow."},
		"low":    {"Obligations at home may feel heavier than usual.", "Divide duties explicitly; unspoken expectations breed friction."},
	},
	model.CategorySpiritual: {
		"high":   {"Inner clarity comes readily; practice deepens without effort.", "Protect a daily quiet interval, even a short one."},
		"medium": {"The inner life hums quietly beneath daily affairs.", "A walk without a destination counts as practice too."},
		"low":    {"Meaning feels distant amid the noise of obligations.", "Reduce inputs: fewer screens, more silence."},
	},
}

// Rating отображает балл 0..1 в текстовый рейтинг. Ступенчатая
// неубывающая функция, граничные значения относятся к верхнему уровню.
func Rating(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent"
	case score >= 0.7:
		return "Very Good"
	case score >= 0.6:
		return "Good"
	case score >= 0.5:
		return "Fair"
	case score >= 0.4:
		return "Challenging"
	default:
		return "Difficult"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// animalInfluence - упрощённый балл влияния знака: функция-заглушка от
// индекса животного, не полный движок совместимости
func animalInfluence(animal model.Animal) float64 {
	idx := AnimalIndex(animal)
	if idx < 0 {
		return 0.5
	}
	return 0.5 + float64(idx%5)*0.1
}

// dayScore - общий балл дня: лунный вес 0.3 + самосовместимость стихий 0.4 +
// влияние знака 0.3
func dayScore(chart *model.FourPillarsChart, balance *model.ElementBalance, date time.Time) float64 {
	lunar := LunarData(date)
	lunarScore := lunarPhaseWeights[lunar.Phase]
	elementScore := clamp01(ElementCompatibility(chart.Day.Element, balance.Strongest))
	animalScore := animalInfluence(chart.Year.Animal)
	return clamp01(lunarScore*lunarWeight + elementScore*elementWeight + animalScore*animalWeight)
}

// generateCore - общий алгоритм всех четырёх таймфреймов: лунные данные на
// начало, баланс стихий карты, общий балл, прогнозы по шести категориям и
// делегирование рекомендаций анализатору стихий
func generateCore(chart *model.FourPillarsChart, start, end time.Time, htype model.HoroscopeType) (*model.HoroscopePeriod, error) {
	if chart == nil {
		return nil, model.ErrNoChart
	}
	balance, err := AnalyzeElements(chart)
	if err != nil {
		return nil, err
	}

	lunar := LunarData(start)
	score := dayScore(chart, balance, start)

	categories := make(map[string]model.CategoryPrediction, len(categoryElements))
	for name, pair := range categoryElements {
		categories[name] = categoryPrediction(name, pair, balance)
	}

	remedy := SuggestRemedies(balance)

	period := &model.HoroscopePeriod{
		Type:       htype,
		Range:      model.DateRange{Start: start, End: end},
		AnimalSign: chart.Year.Animal,
		Overall: model.OverallPrediction{
			Score:   score,
			Rating:  Rating(score),
			Summary: overallSummary(chart.Year.Animal, score, lunar.Phase),
			KeyInfluences: []string{
				fmt.Sprintf("Lunar phase: %s", lunar.Phase),
				fmt.Sprintf("Dominant element: %s", balance.Strongest),
				fmt.Sprintf("Day master element: %s", chart.Day.Element),
			},
		},
		Categories: categories,
		Auspicious: []string{
			fmt.Sprintf("Activities aligned with %s benefit from your dominant element", balance.Strongest),
		},
		Challenges: []string{
			fmt.Sprintf("Matters governed by %s demand extra attention while that element is weak", balance.Weakest),
		},
		Remedies: []string{
			remedy.Advice,
			fmt.Sprintf("Favorable colors: %v; directions: %v", remedy.Colors, remedy.Directions),
		},
		Lunar:    lunar,
		Elements: balance,
	}
	return period, nil
}

// categoryPrediction считает балл категории как среднее счётчиков её пары
// стихий, нормированное к 0..1
func categoryPrediction(name string, pair [2]model.Element, balance *model.ElementBalance) model.CategoryPrediction {
	avg := (balance.Counts[pair[0]] + balance.Counts[pair[1]]) / 2
	score := clamp01(avg / 3.0)

	tier := "medium"
	switch {
	case score >= 0.7:
		tier = "high"
	case score < 0.4:
		tier = "low"
	}
	texts := categoryTemplates[name][tier]

	return model.CategoryPrediction{
		Score:      score,
		Rating:     Rating(score),
		Prediction: texts.prediction,
		Advice:     texts.advice,
	}
}

func overallSummary(animal model.Animal, score float64, phase string) string {
	return fmt.Sprintf("For the %s, this period rates %s (%.2f) under the %s.",
		animal, Rating(score), score, phase)
}

// GenerateHoroscope - единая точка входа генерации по таймфрейму
func GenerateHoroscope(chart *model.FourPillarsChart, htype model.HoroscopeType, date time.Time) (*model.HoroscopePeriod, error) {
	switch htype {
	case model.HoroscopeDaily:
		return GenerateDaily(chart, date)
	case model.HoroscopeWeekly:
		return GenerateWeekly(chart, date)
	case model.HoroscopeMonthly:
		return GenerateMonthly(chart, date)
	case model.HoroscopeYearly:
		return GenerateYearly(chart, date.Year())
	default:
		return nil, model.NewValidationError("type", fmt.Sprintf("неизвестный таймфрейм %q", htype))
	}
}
