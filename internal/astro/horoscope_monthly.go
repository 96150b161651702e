package astro

import (
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Пороги месячного сканирования
const (
	auspiciousDateThreshold   = 0.7
	challengingScoreThreshold = 0.5
)

// GenerateMonthly строит месячный гороскоп подневным сканированием месяца:
// даты ново- и полнолуний, доминирующая лунная стоянка, солнечные термины
// месяца, журнал переходов дневной стихии и благоприятные/сложные отрезки.
// Каждый день оценивается независимо, O(дней в месяце).
func GenerateMonthly(chart *model.FourPillarsChart, monthOf time.Time) (*model.HoroscopePeriod, error) {
	start := time.Date(monthOf.Year(), monthOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	period, err := generateCore(chart, start, end, model.HoroscopeMonthly)
	if err != nil {
		return nil, err
	}

	// Верхняя граница - последний миг месяца: SolarTermsInRange включает
	// обе границы, и термин, датированный ровно полуночью следующего
	// месяца, не должен попасть в этот
	details := &model.MonthlyDetails{
		SolarTerms: SolarTermsInRange(start, end.AddDate(0, 0, 1).Add(-time.Nanosecond)),
	}

	mansionFreq := make(map[int]int)
	var prevPhase string
	var prevElement model.Element
	var challengeStart *time.Time

	daysInMonth := end.Day()
	for d := 1; d <= daysInMonth; d++ {
		day := start.AddDate(0, 0, d-1)
		lunar := LunarData(day)
		mansionFreq[lunar.Mansion]++

		// Ново- и полнолуния - по входу фазы в соответствующую корзину
		if lunar.Phase != prevPhase {
			switch lunar.Phase {
			case "New Moon":
				details.NewMoons = append(details.NewMoons, day)
			case "Full Moon":
				details.FullMoons = append(details.FullMoons, day)
			}
		}
		prevPhase = lunar.Phase

		// Журнал переходов дневной стихии с аннотацией по циклам
		elem := DayElement(day)
		if d > 1 && elem != prevElement {
			details.ElementShifts = append(details.ElementShifts, model.ElementShift{
				Date:     day,
				From:     prevElement,
				To:       elem,
				Relation: shiftRelation(prevElement, elem),
			})
		}
		prevElement = elem

		score := dayScore(chart, period.Elements, day)
		if score >= auspiciousDateThreshold {
			details.AuspiciousDates = append(details.AuspiciousDates, day)
		}

		// Непрерывные отрезки дней с низким баллом собираются в периоды
		if score < challengingScoreThreshold {
			if challengeStart == nil {
				cs := day
				challengeStart = &cs
			}
		} else if challengeStart != nil {
			details.ChallengingPeriods = append(details.ChallengingPeriods, model.ChallengingPeriod{
				Start: *challengeStart,
				End:   day.AddDate(0, 0, -1),
			})
			challengeStart = nil
		}
	}
	if challengeStart != nil {
		details.ChallengingPeriods = append(details.ChallengingPeriods, model.ChallengingPeriod{
			Start: *challengeStart,
			End:   end,
		})
	}

	// Доминирующая стоянка - по частоте, при равенстве меньший номер
	best, bestCount := 0, -1
	for mansion := 0; mansion < 28; mansion++ {
		if mansionFreq[mansion] > bestCount {
			best, bestCount = mansion, mansionFreq[mansion]
		}
	}
	details.DominantMansion = best

	period.Confidence = 0.6
	period.Monthly = details
	return period, nil
}

// shiftRelation аннотирует переход стихий по циклам порождения и контроля
func shiftRelation(from, to model.Element) string {
	switch {
	case Generates(from) == to:
		return "generative"
	case Controls(from) == to:
		return "controlling"
	default:
		return "neutral"
	}
}
