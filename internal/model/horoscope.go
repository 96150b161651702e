package model

import "time"

// HoroscopeType - таймфрейм гороскопа
type HoroscopeType string

const (
	HoroscopeDaily   HoroscopeType = "daily"
	HoroscopeWeekly  HoroscopeType = "weekly"
	HoroscopeMonthly HoroscopeType = "monthly"
	HoroscopeYearly  HoroscopeType = "yearly"
)

// Категории жизни для прогнозов по категориям
const (
	CategoryWealth        = "wealth"
	CategoryCareer        = "career"
	CategoryHealth        = "health"
	CategoryRelationships = "relationships"
	CategoryFamily        = "family"
	CategorySpiritual     = "spiritual"
)

// LunarData - лунные данные на дату: фаза, лунная стоянка и освещённость
type LunarData struct {
	Phase        string  `json:"phase"`
	PhaseIndex   int     `json:"phase_index"`
	Mansion      int     `json:"mansion"`
	Illumination float64 `json:"illumination"`
	JulianDay    float64 `json:"julian_day"`
}

// SolarTerm - солнечный термин: точка на эклиптике с шагом 15°
type SolarTerm struct {
	Index        int       `json:"index"`
	Name         string    `json:"name"`
	Longitude    float64   `json:"longitude"`
	Date         time.Time `json:"date"`
	Significance string    `json:"significance"`
}

// DateRange - интервал дат гороскопа
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OverallPrediction - общий прогноз периода
type OverallPrediction struct {
	Score         float64  `json:"score"`
	Rating        string   `json:"rating"`
	Summary       string   `json:"summary"`
	KeyInfluences []string `json:"key_influences"`
}

// CategoryPrediction - прогноз по одной категории жизни
type CategoryPrediction struct {
	Score      float64 `json:"score"`
	Rating     string  `json:"rating"`
	Prediction string  `json:"prediction"`
	Advice     string  `json:"advice"`
}

// DaySnapshot - лунный снимок одного дня недельного окна
type DaySnapshot struct {
	Date  time.Time `json:"date"`
	Phase string    `json:"phase"`
	Score float64   `json:"score"`
}

// ElementShift - переход дневной стихии между соседними днями месяца,
// аннотированный характером связи по циклам порождения/контроля
type ElementShift struct {
	Date     time.Time `json:"date"`
	From     Element   `json:"from"`
	To       Element   `json:"to"`
	Relation string    `json:"relation"` // generative, controlling, neutral
}

// ChallengingPeriod - непрерывный отрезок дней с низким баллом
type ChallengingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DailyDetails - обогащение дневного гороскопа
type DailyDetails struct {
	DayElement        Element `json:"day_element"`
	Mansion           int     `json:"mansion"`
	AuspiciousWindow  string  `json:"auspicious_window,omitempty"`
	ChallengingWindow string  `json:"challenging_window,omitempty"`
}

// WeeklyDetails - обогащение недельного гороскопа
type WeeklyDetails struct {
	Days            []DaySnapshot `json:"days"`
	PeakDays        []time.Time   `json:"peak_days"`
	ChallengingDays []time.Time   `json:"challenging_days"`
	Recommendations []string      `json:"recommendations"`
}

// MonthlyDetails - обогащение месячного гороскопа
type MonthlyDetails struct {
	NewMoons           []time.Time         `json:"new_moons"`
	FullMoons          []time.Time         `json:"full_moons"`
	DominantMansion    int                 `json:"dominant_mansion"`
	SolarTerms         []SolarTerm         `json:"solar_terms"`
	ElementShifts      []ElementShift      `json:"element_shifts"`
	AuspiciousDates    []time.Time         `json:"auspicious_dates"`
	ChallengingPeriods []ChallengingPeriod `json:"challenging_periods"`
}

// YearlyDetails - обогащение годового гороскопа
type YearlyDetails struct {
	YearAnimal  Animal                        `json:"year_animal"`
	YearElement Element                       `json:"year_element"`
	NewYearDate time.Time                     `json:"new_year_date"`
	MajorEvents []string                      `json:"major_events"`
	LifeAreas   map[string]CategoryPrediction `json:"life_areas"`
	Remedies    []string                      `json:"remedies"`
}

// HoroscopePeriod - гороскоп одного таймфрейма. Создаётся заново при каждой
// генерации и после построения не изменяется: каждый вызов - чистая функция
// от (карта, интервал дат). Заполнено ровно одно из полей деталей,
// соответствующее Type.
type HoroscopePeriod struct {
	Type       HoroscopeType                 `json:"type"`
	Range      DateRange                     `json:"date_range"`
	AnimalSign Animal                        `json:"animal_sign"`
	Overall    OverallPrediction             `json:"overall"`
	Categories map[string]CategoryPrediction `json:"categories"`
	Auspicious []string                      `json:"auspicious_periods"`
	Challenges []string                      `json:"challenges"`
	Remedies   []string                      `json:"remedies"`
	Lunar      LunarData                     `json:"lunar_data"`
	Elements   *ElementBalance               `json:"elemental_balance"`
	Confidence float64                       `json:"confidence"`

	Daily   *DailyDetails   `json:"daily,omitempty"`
	Weekly  *WeeklyDetails  `json:"weekly,omitempty"`
	Monthly *MonthlyDetails `json:"monthly,omitempty"`
	Yearly  *YearlyDetails  `json:"yearly,omitempty"`
}
