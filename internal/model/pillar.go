package model

// Stem - один из 10 Небесных стволов (Цзя..Гуй)
type Stem string

// Branch - одна из 12 Земных ветвей (Цзы..Хай)
type Branch string

// Element - одна из пяти стихий У-син
type Element string

// Animal - один из 12 знаков зодиака
type Animal string

const (
	ElementWood  Element = "Wood"
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementMetal Element = "Metal"
	ElementWater Element = "Water"
)

// Pillar - один столп карты Ба-Цзы: ствол + ветвь. Стихия и животное -
// чистые функции от ствола и ветви, никогда не задаются независимо.
type Pillar struct {
	Stem    Stem    `json:"stem"`
	Branch  Branch  `json:"branch"`
	Element Element `json:"element"`
	Animal  Animal  `json:"animal"`
}

// FourPillarsChart - четыре столпа (год/месяц/день/час), корневая карта
// китайской астрологии
type FourPillarsChart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// Pillars возвращает столпы в фиксированном порядке год/месяц/день/час
func (c *FourPillarsChart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Hour}
}
