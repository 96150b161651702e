package astro

import (
	"fmt"
	"math"
	"sort"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Веса факторов совместимости
const (
	weightTriangle     = 2.0
	weightPolar        = 1.5
	weightSecretFriend = 1.8
	weightElement      = 1.3
	weightPolarity     = 0.8
	weightDirection    = 0.6

	// traditionalBias - константа традиционной поправки: итог смешивается
	// 15% к ней и 85% к сырому взвешенному баллу
	traditionalBias = 7.0
	biasBlend       = 0.15
)

// factorOrder задаёт порядок суммирования факторов при свёртке балла
var factorOrder = []string{"triangle", "polar", "secret_friend", "element", "polarity", "direction"}

// CompatibilityOptions включает дополнительные факторы полярности и направления
type CompatibilityOptions struct {
	IncludePolarity  bool
	IncludeDirection bool
}

// CalculateCompatibility считает совместимость пары знаков по взвешенным
// факторам: треугольник союзников, полярная противоположность, тайная
// дружба и стихии (плюс полярность и направление по опциям). Одинаковые
// знаки - ошибка валидации, а не балл самосовместимости. Балл симметричен:
// пара приводится к каноническому порядку до расчёта.
func CalculateCompatibility(sign1, sign2 model.Animal, opts CompatibilityOptions) (*model.CompatibilityResult, error) {
	idx1, idx2 := AnimalIndex(sign1), AnimalIndex(sign2)
	if idx1 < 0 {
		return nil, model.NewValidationError("sign1", fmt.Sprintf("неизвестный знак %q", sign1))
	}
	if idx2 < 0 {
		return nil, model.NewValidationError("sign2", fmt.Sprintf("неизвестный знак %q", sign2))
	}
	if sign1 == sign2 {
		return nil, model.NewValidationError("sign2", "знаки должны различаться")
	}

	// Канонический порядок обеспечивает score(A,B) == score(B,A)
	a, b := sign1, sign2
	if idx1 > idx2 {
		a, b = b, a
	}

	elemA, err := AnimalElement(a)
	if err != nil {
		return nil, err
	}
	elemB, err := AnimalElement(b)
	if err != nil {
		return nil, err
	}
	bonus := generativeBonus(elemA, elemB)

	breakdown := make(map[string]model.FactorScore, 6)

	triangleScore, triangleRel := triangleFactor(a, b)
	breakdown["triangle"] = model.FactorScore{Score: triangleScore, Weight: weightTriangle, Note: triangleRel}

	polarScore, isPolar := polarFactor(a, b, bonus)
	breakdown["polar"] = model.FactorScore{Score: polarScore, Weight: weightPolar}

	friendScore, isFriend := secretFriendFactor(a, b, bonus)
	breakdown["secret_friend"] = model.FactorScore{Score: friendScore, Weight: weightSecretFriend}

	breakdown["element"] = model.FactorScore{
		Score:  ElementCompatibility(elemA, elemB) * 10,
		Weight: weightElement,
		Note:   fmt.Sprintf("%s vs %s", elemA, elemB),
	}

	if opts.IncludePolarity {
		breakdown["polarity"] = model.FactorScore{Score: polarityScore(a, b), Weight: weightPolarity}
	}
	if opts.IncludeDirection {
		breakdown["direction"] = model.FactorScore{Score: directionScore(a, b), Weight: weightDirection}
	}

	// Фиксированный порядок суммирования: порядок обхода map случаен, а
	// float-сложение неассоциативно, итог обязан совпадать бит в бит между
	// вызовами и с зеркальной парой
	var weightedSum, totalWeight float64
	for _, name := range factorOrder {
		f, ok := breakdown[name]
		if !ok {
			continue
		}
		weightedSum += f.Score * f.Weight
		totalWeight += f.Weight
	}
	raw := weightedSum / totalWeight
	overall := clampScore(raw*(1-biasBlend) + traditionalBias*biasBlend)

	// Приоритет разрешения типа отношений:
	// тайный друг > ненейтральный треугольник > полярная пара > нейтрально
	relType := model.RelationNeutral
	switch {
	case isFriend:
		relType = model.RelationSecretFriend
	case triangleRel != model.RelationNeutral:
		relType = triangleRel
	case isPolar:
		relType = model.RelationPolarOpposite
	}

	return &model.CompatibilityResult{
		Sign1:            sign1,
		Sign2:            sign2,
		OverallScore:     overall,
		RelationshipType: relType,
		Breakdown:        breakdown,
		Analysis:         buildAnalysis(sign1, sign2, relType, overall),
	}, nil
}

// generativeBonus - бонус за взаимно порождающие стихии. Порог повторяет
// исходное условие compatibilityScore > 1.0.
func generativeBonus(e1, e2 model.Element) float64 {
	if ElementCompatibility(e1, e2) > 1.0 {
		return 0.5
	}
	return 0
}

// triangleFactor: одна группа треугольника - база 8.0, соседство в
// упорядоченной тройке +1.0; разные группы - нейтральные 6.5
func triangleFactor(a, b model.Animal) (float64, string) {
	for _, group := range triangleGroups {
		posA, posB := -1, -1
		for i, member := range group {
			if member == a {
				posA = i
			}
			if member == b {
				posB = i
			}
		}
		if posA >= 0 && posB >= 0 {
			if int(math.Abs(float64(posA-posB))) == 1 {
				return 9.0, model.RelationTriangleAdjacent
			}
			return 8.0, model.RelationTriangleSame
		}
	}
	return 6.5, model.RelationNeutral
}

// polarFactor: полярная пара - 7.5 плюс бонус, иначе нейтральные 5.5
func polarFactor(a, b model.Animal, bonus float64) (float64, bool) {
	if polarOpposites[a] == b {
		return 7.5 + bonus, true
	}
	return 5.5, false
}

// secretFriendFactor: тайные друзья - 8.5 плюс бонус, иначе нейтрально
func secretFriendFactor(a, b model.Animal, bonus float64) (float64, bool) {
	if secretFriends[a] == b {
		return 8.5 + bonus, true
	}
	return 5.5, false
}

// polarityScore: дополняющие полярности (ян с инь) гармоничнее совпадающих
func polarityScore(a, b model.Animal) float64 {
	if zodiacMeta[a].Polarity != zodiacMeta[b].Polarity {
		return 7.5
	}
	return 6.0
}

// directionScore: чем меньше угловое расстояние направлений, тем выше балл
func directionScore(a, b model.Animal) float64 {
	diff := math.Abs(zodiacMeta[a].Direction - zodiacMeta[b].Direction)
	if diff > 180 {
		diff = 360 - diff
	}
	return 10 - diff/36
}

func clampScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// AnalyzeTriangleCompatibility возвращает только треугольный фактор пары
func AnalyzeTriangleCompatibility(a, b model.Animal) (float64, string, error) {
	if AnimalIndex(a) < 0 || AnimalIndex(b) < 0 {
		return 0, "", model.NewValidationError("sign", "неизвестный знак")
	}
	if a == b {
		return 0, "", model.NewValidationError("sign", "знаки должны различаться")
	}
	score, rel := triangleFactor(a, b)
	return score, rel, nil
}

func buildAnalysis(a, b model.Animal, relType string, score float64) model.CompatibilityAnalysis {
	analysis := model.CompatibilityAnalysis{
		Summary: fmt.Sprintf("%s and %s score %.1f out of 10.", a, b, score),
	}

	switch relType {
	case model.RelationSecretFriend:
		analysis.Strengths = []string{"A secret-friend bond: deep instinctive trust", "Mutual protection in hard times"}
		analysis.Challenges = []string{"The closeness can crowd out other relationships"}
		analysis.Recommendations = []string{"Lean on the bond, but keep outside friendships alive"}
		analysis.LongTermPotential = "Among the most durable pairings in the zodiac."
	case model.RelationTriangleAdjacent, model.RelationTriangleSame:
		analysis.Strengths = []string{"Shared triangle temperament: goals align naturally", "Effortless mutual understanding"}
		analysis.Challenges = []string{"Similar blind spots go unchallenged"}
		analysis.Recommendations = []string{"Invite outside perspectives on big decisions"}
		analysis.LongTermPotential = "Strong allies; the partnership compounds over time."
	case model.RelationPolarOpposite:
		analysis.Strengths = []string{"Opposites supply exactly what the other lacks"}
		analysis.Challenges = []string{"Clashing instincts demand constant translation", "Conflict escalates quickly without rules"}
		analysis.Recommendations = []string{"Agree on decision domains early", "Treat differences as division of labor"}
		analysis.LongTermPotential = "High effort, high reward; stability comes with maturity."
	default:
		analysis.Strengths = []string{"No structural friction between the signs"}
		analysis.Challenges = []string{"No structural pull either: the bond needs deliberate tending"}
		analysis.Recommendations = []string{"Build shared routines; chemistry here is made, not given"}
		analysis.LongTermPotential = "Steady if both invest; fades if taken for granted."
	}

	if score >= 8 {
		analysis.Summary += " An exceptionally favorable pairing."
	} else if score < 5 {
		analysis.Summary += " A demanding pairing that rewards patience."
	}
	return analysis
}

// PairKey - канонический ключ пары для матрицы и кэша
func PairKey(a, b model.Animal) string {
	if AnimalIndex(a) > AnimalIndex(b) {
		a, b = b, a
	}
	return fmt.Sprintf("%s-%s", a, b)
}

// CompatibilityMatrix жадно считает все 66 неупорядоченных пар знаков
func CompatibilityMatrix(opts CompatibilityOptions) (map[string]*model.CompatibilityResult, error) {
	matrix := make(map[string]*model.CompatibilityResult, 66)
	for i := 0; i < len(ZodiacAnimals); i++ {
		for j := i + 1; j < len(ZodiacAnimals); j++ {
			result, err := CalculateCompatibility(ZodiacAnimals[i], ZodiacAnimals[j], opts)
			if err != nil {
				return nil, err
			}
			matrix[PairKey(ZodiacAnimals[i], ZodiacAnimals[j])] = result
		}
	}
	return matrix, nil
}

// CompatibilityTrends агрегирует совместимость знака с 11 остальными:
// лучшие и сложные пары и распределение по полосам баллов
func CompatibilityTrends(sign model.Animal, opts CompatibilityOptions) (*model.CompatibilityTrends, error) {
	if AnimalIndex(sign) < 0 {
		return nil, model.NewValidationError("sign", fmt.Sprintf("неизвестный знак %q", sign))
	}

	scores := make([]model.SignScore, 0, len(ZodiacAnimals)-1)
	var total float64
	distribution := map[string]int{"excellent": 0, "good": 0, "average": 0, "difficult": 0}

	for _, other := range ZodiacAnimals {
		if other == sign {
			continue
		}
		result, err := CalculateCompatibility(sign, other, opts)
		if err != nil {
			return nil, err
		}
		scores = append(scores, model.SignScore{Sign: other, Score: result.OverallScore})
		total += result.OverallScore
		distribution[scoreBand(result.OverallScore)]++
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })

	return &model.CompatibilityTrends{
		Sign:         sign,
		Best:         scores[:3],
		Challenging:  scores[len(scores)-3:],
		Distribution: distribution,
		AverageScore: total / float64(len(scores)),
	}, nil
}

func scoreBand(score float64) string {
	switch {
	case score >= 8:
		return "excellent"
	case score >= 6.5:
		return "good"
	case score >= 5:
		return "average"
	default:
		return "difficult"
	}
}
