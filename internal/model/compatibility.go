package model

// Типы отношений между знаками, в порядке убывания приоритета разрешения
const (
	RelationSecretFriend     = "secret_friend"
	RelationTriangleAdjacent = "triangle_adjacent"
	RelationTriangleSame     = "triangle_same"
	RelationPolarOpposite    = "polar_opposite"
	RelationNeutral          = "neutral"
)

// FactorScore - балл одного фактора совместимости с его весом
type FactorScore struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note,omitempty"`
}

// CompatibilityAnalysis - текстовый разбор пары
type CompatibilityAnalysis struct {
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Challenges        []string `json:"challenges"`
	Recommendations   []string `json:"recommendations"`
	LongTermPotential string   `json:"long_term_potential"`
}

// CompatibilityResult - результат расчёта совместимости пары знаков.
// Знаки обязаны различаться: одинаковые знаки - ошибка валидации,
// а не вырожденный балл.
type CompatibilityResult struct {
	Sign1            Animal                 `json:"sign1"`
	Sign2            Animal                 `json:"sign2"`
	OverallScore     float64                `json:"overall_score"` // [1,10]
	RelationshipType string                 `json:"relationship_type"`
	Breakdown        map[string]FactorScore `json:"breakdown"`
	Analysis         CompatibilityAnalysis  `json:"analysis"`
}

// SignScore - знак с баллом совместимости, для списков трендов
type SignScore struct {
	Sign  Animal  `json:"sign"`
	Score float64 `json:"score"`
}

// CompatibilityTrends - агрегат совместимости знака со всеми остальными
type CompatibilityTrends struct {
	Sign         Animal         `json:"sign"`
	Best         []SignScore    `json:"best"`
	Challenging  []SignScore    `json:"challenging"`
	Distribution map[string]int `json:"distribution"`
	AverageScore float64        `json:"average_score"`
}
