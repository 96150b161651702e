package astro

import (
	"math"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

const (
	// SynodicMonth - длительность синодического месяца в сутках
	SynodicMonth = 29.530588
	// SiderealMonth - период обхода лунных стоянок в сутках
	SiderealMonth = 27.3217
	// referenceNewMoonJD - опорное новолуние 2000-01-06 18:14 UTC
	referenceNewMoonJD = 2451550.26
	// termLengthDays - средний интервал между солнечными терминами:
	// тропический год, делённый на 24
	termLengthDays = 365.2422 / 24
)

// MoonPhases - 8 именованных фаз луны в порядке цикла
var MoonPhases = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// LunarData возвращает лунные данные на дату: фазу (возраст луны, разбитый
// на 8 равных корзин), лунную стоянку 0..27 и освещённость в процентах
// (косинусная аппроксимация фазового угла)
func LunarData(t time.Time) model.LunarData {
	jd := TimeToJulianDay(t)

	age := math.Mod(jd-referenceNewMoonJD, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	phaseIdx := int(age/SynodicMonth*8) % 8

	mansionPos := math.Mod(jd, SiderealMonth)
	if mansionPos < 0 {
		mansionPos += SiderealMonth
	}
	mansion := int(mansionPos/SiderealMonth*28) % 28

	illumination := (1 - math.Cos(2*math.Pi*age/SynodicMonth)) / 2 * 100

	return model.LunarData{
		Phase:        MoonPhases[phaseIdx],
		PhaseIndex:   phaseIdx,
		Mansion:      mansion,
		Illumination: illumination,
		JulianDay:    jd,
	}
}

// Названия 24 терминов, начиная от зимнего солнцестояния (долгота 270°)
var solarTermNames = [24]string{
	"Winter Solstice", "Minor Cold", "Major Cold",
	"Beginning of Spring", "Rain Water", "Awakening of Insects",
	"Spring Equinox", "Pure Brightness", "Grain Rain",
	"Beginning of Summer", "Grain Full", "Grain in Ear",
	"Summer Solstice", "Minor Heat", "Major Heat",
	"Beginning of Autumn", "End of Heat", "White Dew",
	"Autumn Equinox", "Cold Dew", "Frost Descent",
	"Beginning of Winter", "Minor Snow", "Major Snow",
}

var solarTermSignificance = map[string]string{
	"Winter Solstice":      "Peak of yin; the return of light begins.",
	"Minor Cold":           "Cold deepens; conserve energy and plan ahead.",
	"Major Cold":           "Coldest stretch of the year; endurance is rewarded.",
	"Beginning of Spring":  "Yang stirs; new undertakings take root.",
	"Rain Water":           "Thaw and moisture; nourish early growth.",
	"Awakening of Insects": "Dormant forces wake; act on stalled plans.",
	"Spring Equinox":       "Day and night balance; harmonize competing aims.",
	"Pure Brightness":      "Clarity and renewal; honor what came before.",
	"Grain Rain":           "Rains feed the grain; steady effort accumulates.",
	"Beginning of Summer":  "Growth accelerates; channel rising energy.",
	"Grain Full":           "Seeds fill but do not ripen; patience before harvest.",
	"Grain in Ear":         "Sow and transplant; decisive timing matters.",
	"Summer Solstice":      "Peak of yang; ambition crests, guard against excess.",
	"Minor Heat":           "Warmth builds; pace long efforts carefully.",
	"Major Heat":           "Hottest period; cool judgment is an advantage.",
	"Beginning of Autumn":  "Harvest approaches; consolidate gains.",
	"End of Heat":          "Heat withdraws; transitions go smoothly now.",
	"White Dew":            "First condensation; attend to details and health.",
	"Autumn Equinox":       "Balance returns; settle accounts and disputes.",
	"Cold Dew":             "Chill arrives; prepare reserves for winter.",
	"Frost Descent":        "First frost; prune what no longer serves.",
	"Beginning of Winter":  "Storage season; turn attention inward.",
	"Minor Snow":           "First snows; quiet accumulation of resources.",
	"Major Snow":           "Deep winter nears; rest restores strength.",
}

// SolarTerms возвращает ровно 24 солнечных термина года с шагом 15° по
// долготе. Даты считаются по упрощённой линейной модели скорости долготы
// от зимнего солнцестояния предыдущего года, без полного VSOP: первый
// термин года - Малые холода (начало января), последний - зимнее
// солнцестояние (конец декабря).
func SolarTerms(year int) []model.SolarTerm {
	wsJD := GregorianToJulianDay(year-1, 12, 21, 18, 0, 0, 0)

	terms := make([]model.SolarTerm, 0, 24)
	for i := 0; i < 24; i++ {
		nameIdx := (i + 1) % 24
		jd := wsJD + float64(i+1)*termLengthDays
		y, m, d, h, mi, s := JulianDayToGregorian(jd)
		name := solarTermNames[nameIdx]
		terms = append(terms, model.SolarTerm{
			Index:        i,
			Name:         name,
			Longitude:    NormalizeAngle(270 + 15*float64(i+1)),
			Date:         time.Date(y, time.Month(m), d, h, mi, s, 0, time.UTC),
			Significance: solarTermSignificance[name],
		})
	}
	return terms
}

// CurrentSolarTerm возвращает последний термин, дата которого не позже
// заданной, среди 24 терминов того же года. Если дата предшествует первому
// термину года, возвращается последний термин (перенос через границу года).
func CurrentSolarTerm(t time.Time) (model.SolarTerm, error) {
	terms := SolarTerms(t.Year())
	if len(terms) == 0 {
		return model.SolarTerm{}, model.ErrNoSolarTerm
	}

	current := terms[len(terms)-1] // перенос для дат до первого термина
	for _, term := range terms {
		if !term.Date.After(t) {
			current = term
		}
	}
	return current, nil
}

// SolarTermsInRange возвращает термины года, попадающие в интервал [start, end]
func SolarTermsInRange(start, end time.Time) []model.SolarTerm {
	var result []model.SolarTerm
	for _, term := range SolarTerms(start.Year()) {
		if !term.Date.Before(start) && !term.Date.After(end) {
			result = append(result, term)
		}
	}
	return result
}
