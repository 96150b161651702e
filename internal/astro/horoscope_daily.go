package astro

import (
	"fmt"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// DayElement - стихия дня: день месяца по модулю 5 над фиксированным
// циклом стихий
func DayElement(date time.Time) model.Element {
	return ElementOrder[(date.Day()-1)%5]
}

// GenerateDaily строит дневной гороскоп: общее ядро плюс фаза и стоянка
// луны, стихия дня и двухчасовые окна. Стихия дня однозначна, поэтому за
// вызов называется не более одного окна каждого вида.
func GenerateDaily(chart *model.FourPillarsChart, date time.Time) (*model.HoroscopePeriod, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)

	period, err := generateCore(chart, start, end, model.HoroscopeDaily)
	if err != nil {
		return nil, err
	}

	dayElem := DayElement(start)
	details := &model.DailyDetails{
		DayElement: dayElem,
		Mansion:    period.Lunar.Mansion,
	}

	// Благоприятное окно: первый двойной час, стихия ветви которого
	// совпадает со стихией дня; неблагоприятное - чья стихия контролирует
	// стихию дня
	for i, branch := range EarthlyBranches {
		be, err := BranchElement(branch)
		if err != nil {
			return nil, err
		}
		if details.AuspiciousWindow == "" && be == dayElem {
			details.AuspiciousWindow = doubleHourWindow(i)
		}
		if details.ChallengingWindow == "" && Controls(be) == dayElem {
			details.ChallengingWindow = doubleHourWindow(i)
		}
		if details.AuspiciousWindow != "" && details.ChallengingWindow != "" {
			break
		}
	}

	if details.AuspiciousWindow != "" {
		period.Auspicious = append(period.Auspicious,
			fmt.Sprintf("The %s double-hour (%s) resonates with the day element", dayElem, details.AuspiciousWindow))
	}
	if details.ChallengingWindow != "" {
		period.Challenges = append(period.Challenges,
			fmt.Sprintf("The %s window works against the day element", details.ChallengingWindow))
	}

	period.Confidence = 0.8
	period.Daily = details
	return period, nil
}

// doubleHourWindow форматирует границы i-го двойного часа
func doubleHourWindow(idx int) string {
	startHour := idx * 2
	return fmt.Sprintf("%02d:00-%02d:00", startHour, (startHour+2)%24)
}
