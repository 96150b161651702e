package astro

import (
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Пороги пиковых и сложных дней недельного окна
const (
	peakDayThreshold        = 0.8
	challengingDayThreshold = 0.4
)

// GenerateWeekly строит недельный гороскоп: 7 подневных лунных снимков,
// пиковые и сложные дни и рекомендации по активности в зависимости от
// присутствия полнолуния в окне
func GenerateWeekly(chart *model.FourPillarsChart, weekStart time.Time) (*model.HoroscopePeriod, error) {
	start := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	period, err := generateCore(chart, start, end, model.HoroscopeWeekly)
	if err != nil {
		return nil, err
	}

	details := &model.WeeklyDetails{
		Days: make([]model.DaySnapshot, 0, 7),
	}

	fullMoonInWindow := false
	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		lunar := LunarData(day)
		score := dayScore(chart, period.Elements, day)

		details.Days = append(details.Days, model.DaySnapshot{
			Date:  day,
			Phase: lunar.Phase,
			Score: score,
		})
		if score >= peakDayThreshold {
			details.PeakDays = append(details.PeakDays, day)
		}
		if score < challengingDayThreshold {
			details.ChallengingDays = append(details.ChallengingDays, day)
		}
		if lunar.Phase == "Full Moon" {
			fullMoonInWindow = true
		}
	}

	if fullMoonInWindow {
		details.Recommendations = append(details.Recommendations,
			"A Full Moon falls in this week: finish and present work rather than start it",
			"Emotions run high around the Full Moon; schedule difficult talks away from it")
	} else {
		details.Recommendations = append(details.Recommendations,
			"No Full Moon this week: a good stretch for quiet starts and groundwork")
	}

	period.Confidence = 0.7
	period.Weekly = details
	return period, nil
}
