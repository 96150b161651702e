package model

// Star - звезда девятизвёздной ци: номер 1..9, название и стихия
type Star struct {
	Number  int     `json:"number"`
	Name    string  `json:"name"`
	Element Element `json:"element"`
}

// StarTraits - качественные характеристики звезды по номеру
type StarTraits struct {
	Personality   string `json:"personality"`
	Career        string `json:"career"`
	Relationships string `json:"relationships"`
	Health        string `json:"health"`
}

// NineStarProfile - профиль девятизвёздной ци: звезда рождения, текущая
// звезда и проекции по 8 направлениям плюс центр. Звезда рождения - чистая
// функция года рождения, направления - чистые функции звезды рождения.
type NineStarProfile struct {
	BirthStar   Star            `json:"birth_star"`
	CurrentStar Star            `json:"current_star"`
	Directions  map[string]Star `json:"directions"`
	Traits      StarTraits      `json:"traits"`
}
