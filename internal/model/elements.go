package model

// BalanceClass - классификация баланса стихий по разбросу счётчиков
type BalanceClass string

const (
	BalanceWell     BalanceClass = "Well Balanced"
	BalanceMostly   BalanceClass = "Mostly Balanced"
	BalanceSlightly BalanceClass = "Slightly Unbalanced"
	BalanceUneven   BalanceClass = "Unbalanced"
	BalanceSeverely BalanceClass = "Severely Unbalanced"
)

// ElementRelation - связи стихии в циклах порождения и контроля.
// Фиксированный направленный цикл, а не структура указателей.
type ElementRelation struct {
	Generates    Element `json:"generates"`
	GeneratedBy  Element `json:"generated_by"`
	Controls     Element `json:"controls"`
	ControlledBy Element `json:"controlled_by"`
}

// ElementBalance - распределение стихий по карте: столпы дают вес 1.0,
// вторичные стихии ветвей - 0.5
type ElementBalance struct {
	Counts        map[Element]float64         `json:"counts"`
	Strongest     Element                     `json:"strongest"`
	Weakest       Element                     `json:"weakest"`
	Balance       BalanceClass                `json:"balance"`
	Relationships map[Element]ElementRelation `json:"relationships"`
}

// Remedy - корректирующие рекомендации по самой слабой стихии
type Remedy struct {
	Element    Element  `json:"element"`
	Colors     []string `json:"colors"`
	Materials  []string `json:"materials"`
	Directions []string `json:"directions"`
	Advice     string   `json:"advice"`
}
