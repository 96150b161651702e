package astro

import (
	"fmt"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Канонические последовательности шестидесятеричного цикла.

// HeavenlyStems - 10 Небесных стволов в каноническом порядке
var HeavenlyStems = [10]model.Stem{
	"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui",
}

// EarthlyBranches - 12 Земных ветвей в каноническом порядке
var EarthlyBranches = [12]model.Branch{
	"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai",
}

// ZodiacAnimals - 12 знаков зодиака, по порядку ветвей
var ZodiacAnimals = [12]model.Animal{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// ElementOrder - фиксированный порядок обхода стихий (и порядок разрешения
// ничьих при поиске сильнейшей/слабейшей)
var ElementOrder = [5]model.Element{
	model.ElementWood, model.ElementFire, model.ElementEarth, model.ElementMetal, model.ElementWater,
}

// Первичная стихия ствола: пары стволов делят одну стихию (ян/инь)
var stemElements = map[model.Stem]model.Element{
	"Jia": model.ElementWood, "Yi": model.ElementWood,
	"Bing": model.ElementFire, "Ding": model.ElementFire,
	"Wu": model.ElementEarth, "Ji": model.ElementEarth,
	"Geng": model.ElementMetal, "Xin": model.ElementMetal,
	"Ren": model.ElementWater, "Gui": model.ElementWater,
}

// Вторичная (сопутствующая) стихия ветви - отличается от первичной стихии ствола
var branchElements = map[model.Branch]model.Element{
	"Zi": model.ElementWater, "Chou": model.ElementEarth,
	"Yin": model.ElementWood, "Mao": model.ElementWood,
	"Chen": model.ElementEarth, "Si": model.ElementFire,
	"Wu": model.ElementFire, "Wei": model.ElementEarth,
	"Shen": model.ElementMetal, "You": model.ElementMetal,
	"Xu": model.ElementEarth, "Hai": model.ElementWater,
}

var branchAnimals = map[model.Branch]model.Animal{
	"Zi": "Rat", "Chou": "Ox", "Yin": "Tiger", "Mao": "Rabbit",
	"Chen": "Dragon", "Si": "Snake", "Wu": "Horse", "Wei": "Goat",
	"Shen": "Monkey", "You": "Rooster", "Xu": "Dog", "Hai": "Pig",
}

// Цикл порождения: Дерево→Огонь→Земля→Металл→Вода→Дерево
var generates = map[model.Element]model.Element{
	model.ElementWood:  model.ElementFire,
	model.ElementFire:  model.ElementEarth,
	model.ElementEarth: model.ElementMetal,
	model.ElementMetal: model.ElementWater,
	model.ElementWater: model.ElementWood,
}

// Цикл контроля: Дерево→Земля→Вода→Огонь→Металл→Дерево
var controls = map[model.Element]model.Element{
	model.ElementWood:  model.ElementEarth,
	model.ElementEarth: model.ElementWater,
	model.ElementWater: model.ElementFire,
	model.ElementFire:  model.ElementMetal,
	model.ElementMetal: model.ElementWood,
}

// StemElement возвращает первичную стихию Небесного ствола
func StemElement(s model.Stem) (model.Element, error) {
	e, ok := stemElements[s]
	if !ok {
		return "", model.NewCalculationError("stem_element", fmt.Errorf("неизвестный ствол %q", s))
	}
	return e, nil
}

// BranchElement возвращает вторичную стихию Земной ветви
func BranchElement(b model.Branch) (model.Element, error) {
	e, ok := branchElements[b]
	if !ok {
		return "", model.NewCalculationError("branch_element", fmt.Errorf("неизвестная ветвь %q", b))
	}
	return e, nil
}

// BranchAnimal возвращает знак зодиака Земной ветви
func BranchAnimal(b model.Branch) (model.Animal, error) {
	a, ok := branchAnimals[b]
	if !ok {
		return "", model.NewCalculationError("branch_animal", fmt.Errorf("неизвестная ветвь %q", b))
	}
	return a, nil
}

// Generates возвращает стихию, которую порождает e
func Generates(e model.Element) model.Element { return generates[e] }

// GeneratedBy возвращает стихию, порождающую e
func GeneratedBy(e model.Element) model.Element {
	for from, to := range generates {
		if to == e {
			return from
		}
	}
	return ""
}

// Controls возвращает стихию, которую контролирует e
func Controls(e model.Element) model.Element { return controls[e] }

// ControlledBy возвращает стихию, контролирующую e
func ControlledBy(e model.Element) model.Element {
	for from, to := range controls {
		if to == e {
			return from
		}
	}
	return ""
}

// signMeta - статические метаданные знака зодиака
type signMeta struct {
	Element   model.Element
	Polarity  string // Yang, Yin
	Direction float64
	Triangle  int // 0..3
}

// Метаданные 12 знаков: стихия (по ветви), полярность, направление
// в градусах и группа треугольника
var zodiacMeta = map[model.Animal]signMeta{
	"Rat":     {model.ElementWater, "Yang", 0, 0},
	"Ox":      {model.ElementEarth, "Yin", 30, 1},
	"Tiger":   {model.ElementWood, "Yang", 60, 2},
	"Rabbit":  {model.ElementWood, "Yin", 90, 3},
	"Dragon":  {model.ElementEarth, "Yang", 120, 0},
	"Snake":   {model.ElementFire, "Yin", 150, 1},
	"Horse":   {model.ElementFire, "Yang", 180, 2},
	"Goat":    {model.ElementEarth, "Yin", 210, 3},
	"Monkey":  {model.ElementMetal, "Yang", 240, 0},
	"Rooster": {model.ElementMetal, "Yin", 270, 1},
	"Dog":     {model.ElementEarth, "Yang", 300, 2},
	"Pig":     {model.ElementWater, "Yin", 330, 3},
}

// Группы треугольников союзников, упорядоченные внутри группы
var triangleGroups = [4][3]model.Animal{
	{"Rat", "Dragon", "Monkey"},
	{"Ox", "Snake", "Rooster"},
	{"Tiger", "Horse", "Dog"},
	{"Rabbit", "Goat", "Pig"},
}

// Полярные противоположности: симметричная таблица поиска
var polarOpposites = map[model.Animal]model.Animal{
	"Rat": "Horse", "Horse": "Rat",
	"Ox": "Goat", "Goat": "Ox",
	"Tiger": "Monkey", "Monkey": "Tiger",
	"Rabbit": "Rooster", "Rooster": "Rabbit",
	"Dragon": "Dog", "Dog": "Dragon",
	"Snake": "Pig", "Pig": "Snake",
}

// Тайные друзья: симметричная таблица поиска
var secretFriends = map[model.Animal]model.Animal{
	"Rat": "Ox", "Ox": "Rat",
	"Tiger": "Pig", "Pig": "Tiger",
	"Rabbit": "Dog", "Dog": "Rabbit",
	"Dragon": "Rooster", "Rooster": "Dragon",
	"Snake": "Monkey", "Monkey": "Snake",
	"Horse": "Goat", "Goat": "Horse",
}

// AnimalIndex возвращает позицию знака в каноническом порядке, -1 для неизвестного
func AnimalIndex(a model.Animal) int {
	for i, z := range ZodiacAnimals {
		if z == a {
			return i
		}
	}
	return -1
}

// AnimalElement возвращает стихию знака зодиака
func AnimalElement(a model.Animal) (model.Element, error) {
	m, ok := zodiacMeta[a]
	if !ok {
		return "", model.NewCalculationError("animal_element", fmt.Errorf("неизвестный знак %q", a))
	}
	return m.Element, nil
}
