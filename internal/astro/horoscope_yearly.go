package astro

import (
	"fmt"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// YearAnimal возвращает животное года: (год − 4) mod 12
func YearAnimal(year int) model.Animal {
	return ZodiacAnimals[modInt(year-4, 12)]
}

// YearElement возвращает стихию года: позиция в 60-летнем цикле,
// делённая на 12, по модулю 5
func YearElement(year int) model.Element {
	return ElementOrder[(modInt(year-4, 60)/12)%5]
}

// ApproximateNewYear оценивает дату китайского Нового года: первое
// новолуние в окне с 21 января по 20 февраля. Упрощённая модель без
// эфемеридной точности.
func ApproximateNewYear(year int) time.Time {
	day := time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC)
	limit := time.Date(year, time.February, 20, 0, 0, 0, 0, time.UTC)

	prev := LunarData(day.AddDate(0, 0, -1)).Phase
	for !day.After(limit) {
		phase := LunarData(day).Phase
		if phase == "New Moon" && prev != "New Moon" {
			return day
		}
		prev = phase
		day = day.AddDate(0, 0, 1)
	}
	// Резерв: середина окна, если вход в фазу не пойман
	return time.Date(year, time.February, 4, 0, 0, 0, 0, time.UTC)
}

// GenerateYearly строит годовой гороскоп: животное и стихия года,
// приблизительная дата Нового года, крупные события и прогнозы по шести
// сферам жизни через то же отображение связей стихий, что и категории,
// плюс годовые рекомендации от противопоставления стихии года сильнейшей
// стихии карты
func GenerateYearly(chart *model.FourPillarsChart, year int) (*model.HoroscopePeriod, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	period, err := generateCore(chart, start, end, model.HoroscopeYearly)
	if err != nil {
		return nil, err
	}

	yearAnimal := YearAnimal(year)
	yearElement := YearElement(year)

	details := &model.YearlyDetails{
		YearAnimal:  yearAnimal,
		YearElement: yearElement,
		NewYearDate: ApproximateNewYear(year),
		LifeAreas:   make(map[string]model.CategoryPrediction, len(categoryElements)),
	}

	for name, pair := range categoryElements {
		details.LifeAreas[name] = categoryPrediction(name, pair, period.Elements)
	}

	details.MajorEvents = yearlyEvents(yearAnimal, yearElement, period.Elements.Strongest)
	details.Remedies = yearlyRemedies(yearElement, period.Elements.Strongest)

	period.Confidence = 0.5
	period.Yearly = details
	return period, nil
}

// yearlyEvents формирует крупные темы года из отношения стихии года к
// сильнейшей стихии карты
func yearlyEvents(animal model.Animal, yearElem, chartElem model.Element) []string {
	events := []string{
		fmt.Sprintf("The year of the %s %s sets the overall tone", yearElem, animal),
	}
	switch {
	case yearElem == chartElem:
		events = append(events, "The year element mirrors your chart: a year of amplification, for better and worse")
	case Generates(yearElem) == chartElem:
		events = append(events, "The year element feeds your dominant element: external support for your plans")
	case Generates(chartElem) == yearElem:
		events = append(events, "Your dominant element feeds the year: expect to give more than you receive")
	case Controls(yearElem) == chartElem:
		events = append(events, "The year element restrains your chart: progress comes through discipline, not force")
	case Controls(chartElem) == yearElem:
		events = append(events, "Your chart restrains the year element: you hold leverage over circumstances")
	default:
		events = append(events, "Year and chart elements run in parallel: steady, unforced development")
	}
	return events
}

// yearlyRemedies - годовые рекомендации; при контролирующем отношении года
// к карте усиливаем стихию-посредник
func yearlyRemedies(yearElem, chartElem model.Element) []string {
	if Controls(yearElem) == chartElem {
		mediator := GeneratedBy(chartElem)
		return []string{
			fmt.Sprintf("Strengthen %s as a mediator: it drains the year's %s and feeds your %s", mediator, yearElem, chartElem),
			remedies[mediator].Advice,
		}
	}
	return []string{
		fmt.Sprintf("Keep %s present in your surroundings to stay in step with the year", yearElem),
		remedies[yearElem].Advice,
	}
}
