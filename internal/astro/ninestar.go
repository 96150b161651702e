package astro

import (
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Девять звёзд девятизвёздной ци, по номерам 1..9
var nineStars = [9]model.Star{
	{Number: 1, Name: "White Water", Element: model.ElementWater},
	{Number: 2, Name: "Black Earth", Element: model.ElementEarth},
	{Number: 3, Name: "Jade Wood", Element: model.ElementWood},
	{Number: 4, Name: "Green Wood", Element: model.ElementWood},
	{Number: 5, Name: "Yellow Earth", Element: model.ElementEarth},
	{Number: 6, Name: "White Metal", Element: model.ElementMetal},
	{Number: 7, Name: "Red Metal", Element: model.ElementMetal},
	{Number: 8, Name: "White Earth", Element: model.ElementEarth},
	{Number: 9, Name: "Purple Fire", Element: model.ElementFire},
}

// Фиксированные модульные смещения проекций по направлениям
var directionOffsets = map[string]int{
	"center":    0,
	"north":     1,
	"northeast": 2,
	"east":      3,
	"southeast": 4,
	"south":     5,
	"southwest": 6,
	"west":      7,
	"northwest": 8,
}

var starTraits = map[int]model.StarTraits{
	1: {
		Personality:   "Adaptable and reflective, with hidden depth beneath a calm surface.",
		Career:        "Thrives in research, strategy and any field rewarding patience.",
		Relationships: "Slow to open up but deeply loyal once trust is earned.",
		Health:        "Watch the kidneys and circulation; avoid chronic cold and overwork.",
	},
	2: {
		Personality:   "Steady, nurturing and service-minded; prefers supporting roles.",
		Career:        "Excels where care and persistence matter: medicine, teaching, agriculture.",
		Relationships: "Devoted partner who shows love through practical help.",
		Health:        "Digestive system needs regular meals and moderate routine.",
	},
	3: {
		Personality:   "Energetic pioneer; direct, impulsive and quick to act.",
		Career:        "Suited to new ventures, engineering and competitive fields.",
		Relationships: "Passionate but impatient; learns tact with age.",
		Health:        "Liver and nerves; temper bursts of activity with rest.",
	},
	4: {
		Personality:   "Gentle communicator, flexible and persuasive like the wind.",
		Career:        "Trade, diplomacy, writing and travel-related work flourish.",
		Relationships: "Romantic and accommodating, sometimes indecisive.",
		Health:        "Respiratory system; benefit from fresh air and movement.",
	},
	5: {
		Personality:   "Central and commanding; attracts responsibility and extremes of fortune.",
		Career:        "Natural leader or organizer; steadiest at the center of events.",
		Relationships: "Strong-willed; needs a partner who respects independence.",
		Health:        "Overall constitution is robust but prone to excess.",
	},
	6: {
		Personality:   "Principled, dignified and exacting, with strong inner authority.",
		Career:        "Management, law, finance and any field of standards and order.",
		Relationships: "Reserved in expression; constancy speaks for itself.",
		Health:        "Head and lungs; rigidity shows in tension, stretch often.",
	},
	7: {
		Personality:   "Charming, sociable and fond of comfort and good conversation.",
		Career:        "Entertainment, hospitality, sales and public speaking.",
		Relationships: "Playful and attentive; dislikes prolonged conflict.",
		Health:        "Mouth, teeth and chest; moderate rich food and late nights.",
	},
	8: {
		Personality:   "Quietly determined; accumulates results through steady effort.",
		Career:        "Real estate, savings, long projects rewarding persistence.",
		Relationships: "Slow-burning loyalty; values family continuity.",
		Health:        "Joints and back; keep moving to avoid stagnation.",
	},
	9: {
		Personality:   "Brilliant and expressive; draws attention and inspires others.",
		Career:        "Arts, media, education and any visible leading role.",
		Relationships: "Warm and dramatic; needs appreciation to thrive.",
		Health:        "Heart and eyes; cool down, the flame burns fast.",
	},
}

// Запасные характеристики для нераспознанного номера звезды
var fallbackTraits = model.StarTraits{
	Personality:   "A balanced nature drawing on several elemental influences.",
	Career:        "Versatile; success follows sustained attention to one path.",
	Relationships: "Harmonious when both partners communicate openly.",
	Health:        "General moderation in diet, rest and effort serves best.",
}

// BirthStar возвращает звезду рождения: 9-летний модульный цикл от 1984 года
func BirthStar(year int) model.Star {
	idx := modInt(year-referenceYear, 9)
	return nineStars[idx]
}

// DirectionalStars проецирует звезду рождения на 8 направлений компаса и
// центр через фиксированные смещения по модулю 9
func DirectionalStars(birth model.Star) map[string]model.Star {
	result := make(map[string]model.Star, len(directionOffsets))
	for direction, offset := range directionOffsets {
		number := modInt(birth.Number-1+offset, 9)
		result[direction] = nineStars[number]
	}
	return result
}

// StarTraitsFor возвращает характеристики звезды по номеру, с разумным
// запасным вариантом для нераспознанных номеров
func StarTraitsFor(number int) model.StarTraits {
	if traits, ok := starTraits[number]; ok {
		return traits
	}
	return fallbackTraits
}

// CalculateNineStar собирает полный профиль девятизвёздной ци
func CalculateNineStar(birthYear, currentYear int) *model.NineStarProfile {
	birth := BirthStar(birthYear)
	return &model.NineStarProfile{
		BirthStar:   birth,
		CurrentStar: BirthStar(currentYear),
		Directions:  DirectionalStars(birth),
		Traits:      StarTraitsFor(birth.Number),
	}
}
