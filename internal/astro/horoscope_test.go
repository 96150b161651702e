package astro

import (
	"errors"
	"testing"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

var horoscopeBirth = model.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30}

// Rating is a non-decreasing step function; boundary scores belong to the
// upper tier.
func TestRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Excellent"},
		{0.8, "Excellent"},
		{0.79, "Very Good"},
		{0.7, "Very Good"},
		{0.69, "Good"},
		{0.6, "Good"},
		{0.5, "Fair"},
		{0.49, "Challenging"},
		{0.4, "Challenging"},
		{0.39, "Difficult"},
		{0.0, "Difficult"},
	}

	for _, tt := range tests {
		if got := Rating(tt.score); got != tt.want {
			t.Errorf("Rating(%.2f) = %q, want %q", tt.score, got, tt.want)
		}
	}

	ranks := map[string]int{"Difficult": 0, "Challenging": 1, "Fair": 2, "Good": 3, "Very Good": 4, "Excellent": 5}

	// Monotonicity over a fine grid
	last := ranks[Rating(1.0)]
	for score := 1.0; score >= 0; score -= 0.01 {
		r := ranks[Rating(score)]
		if r > last {
			t.Fatalf("Rating is not non-decreasing at score %.2f", score)
		}
		last = r
	}
}

func TestDayElementCycle(t *testing.T) {
	tests := []struct {
		day  int
		want model.Element
	}{
		{1, model.ElementWood},
		{2, model.ElementFire},
		{5, model.ElementWater},
		{6, model.ElementWood}, // cycle repeats every five days
		{31, model.ElementWood},
	}

	for _, tt := range tests {
		date := time.Date(2024, 1, tt.day, 0, 0, 0, 0, time.UTC)
		if got := DayElement(date); got != tt.want {
			t.Errorf("DayElement(day %d) = %s, want %s", tt.day, got, tt.want)
		}
	}
}

func TestGenerateDaily(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	period, err := GenerateDaily(chart, date)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}

	if period.Type != model.HoroscopeDaily {
		t.Errorf("type = %s, want daily", period.Type)
	}
	wantStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !period.Range.Start.Equal(wantStart) {
		t.Errorf("range start = %s, want midnight UTC", period.Range.Start)
	}
	if got := period.Range.End.Sub(period.Range.Start); got != 24*time.Hour-time.Second {
		t.Errorf("range span = %s, want 23h59m59s", got)
	}
	if period.AnimalSign != "Horse" {
		t.Errorf("animal sign = %s, want Horse (year animal)", period.AnimalSign)
	}
	if period.Confidence != 0.8 {
		t.Errorf("confidence = %.1f, want 0.8", period.Confidence)
	}
	if period.Daily == nil {
		t.Fatal("daily details missing")
	}
	if period.Daily.DayElement != DayElement(wantStart) {
		t.Errorf("day element = %s, want %s", period.Daily.DayElement, DayElement(wantStart))
	}
	if period.Daily.Mansion != period.Lunar.Mansion {
		t.Errorf("details mansion %d disagrees with lunar mansion %d", period.Daily.Mansion, period.Lunar.Mansion)
	}
	if len(period.Categories) != 6 {
		t.Errorf("categories = %d, want 6", len(period.Categories))
	}
	if period.Overall.Score < 0 || period.Overall.Score > 1 {
		t.Errorf("overall score %.2f out of [0, 1]", period.Overall.Score)
	}
	if period.Overall.Rating != Rating(period.Overall.Score) {
		t.Errorf("rating %q disagrees with score %.2f", period.Overall.Rating, period.Overall.Score)
	}
}

// The day element is single-valued, so at most one auspicious and one
// challenging window can be named per day.
func TestGenerateDailyWindows(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)

	for day := 1; day <= 10; day++ {
		date := time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC)
		period, err := GenerateDaily(chart, date)
		if err != nil {
			t.Fatalf("GenerateDaily(day %d): %v", day, err)
		}
		// Every day element has at least one matching branch element
		if period.Daily.AuspiciousWindow == "" {
			t.Errorf("day %d: no auspicious window named", day)
		}
		if period.Daily.ChallengingWindow == "" {
			t.Errorf("day %d: no challenging window named", day)
		}
		if period.Daily.AuspiciousWindow == period.Daily.ChallengingWindow {
			t.Errorf("day %d: auspicious and challenging windows coincide: %s", day, period.Daily.AuspiciousWindow)
		}
	}
}

func TestGenerateWeekly(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	weekStart := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)

	period, err := GenerateWeekly(chart, weekStart)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}

	if period.Weekly == nil {
		t.Fatal("weekly details missing")
	}
	if len(period.Weekly.Days) != 7 {
		t.Fatalf("weekly snapshot has %d days, want 7", len(period.Weekly.Days))
	}
	if period.Confidence != 0.7 {
		t.Errorf("confidence = %.1f, want 0.7", period.Confidence)
	}

	for i, day := range period.Weekly.Days {
		wantDate := time.Date(2024, 3, 11+i, 0, 0, 0, 0, time.UTC)
		if !day.Date.Equal(wantDate) {
			t.Errorf("day %d date = %s, want %s", i, day.Date.Format("2006-01-02"), wantDate.Format("2006-01-02"))
		}
		if day.Score < 0 || day.Score > 1 {
			t.Errorf("day %d score %.2f out of [0, 1]", i, day.Score)
		}
		if day.Phase == "" {
			t.Errorf("day %d has empty phase", i)
		}
	}

	for _, peak := range period.Weekly.PeakDays {
		found := false
		for _, day := range period.Weekly.Days {
			if day.Date.Equal(peak) && day.Score >= peakDayThreshold {
				found = true
			}
		}
		if !found {
			t.Errorf("peak day %s has no matching high-score snapshot", peak.Format("2006-01-02"))
		}
	}
	if len(period.Weekly.Recommendations) == 0 {
		t.Error("weekly recommendations are empty")
	}
}

func TestGenerateMonthly(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	period, err := GenerateMonthly(chart, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GenerateMonthly: %v", err)
	}

	details := period.Monthly
	if details == nil {
		t.Fatal("monthly details missing")
	}
	if period.Confidence != 0.6 {
		t.Errorf("confidence = %.1f, want 0.6", period.Confidence)
	}

	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	inMonth := func(d time.Time) bool {
		return !d.Before(monthStart) && !d.After(monthEnd)
	}

	for _, d := range details.NewMoons {
		if !inMonth(d) {
			t.Errorf("new moon %s outside March", d.Format("2006-01-02"))
		}
	}
	for _, d := range details.FullMoons {
		if !inMonth(d) {
			t.Errorf("full moon %s outside March", d.Format("2006-01-02"))
		}
	}
	for _, d := range details.AuspiciousDates {
		if !inMonth(d) {
			t.Errorf("auspicious date %s outside March", d.Format("2006-01-02"))
		}
	}
	for _, p := range details.ChallengingPeriods {
		if !inMonth(p.Start) || !inMonth(p.End) {
			t.Errorf("challenging period %s..%s outside March", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
		}
		if p.End.Before(p.Start) {
			t.Errorf("challenging period ends before it starts: %s..%s", p.Start, p.End)
		}
	}
	if details.DominantMansion < 0 || details.DominantMansion > 27 {
		t.Errorf("dominant mansion %d out of [0, 27]", details.DominantMansion)
	}
	if len(details.SolarTerms) == 0 {
		t.Error("no solar terms found in March")
	}
	// The month window is half-open on the right: a term dated at the
	// next month's midnight belongs to April, not March
	monthStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	for _, term := range details.SolarTerms {
		if term.Date.Before(monthStart) || !term.Date.Before(nextMonth) {
			t.Errorf("term %s dated %s outside March", term.Name, term.Date)
		}
	}

	// A 31-day month over a 5-day element cycle always logs shifts
	if len(details.ElementShifts) == 0 {
		t.Error("no element shifts logged in a full month")
	}
	for _, shift := range details.ElementShifts {
		if shift.Relation != "generative" && shift.Relation != "controlling" && shift.Relation != "neutral" {
			t.Errorf("unknown shift relation %q", shift.Relation)
		}
		if shift.From == shift.To {
			t.Errorf("shift logged without an element change on %s", shift.Date.Format("2006-01-02"))
		}
	}
}

func TestGenerateYearly(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	period, err := GenerateYearly(chart, 2024)
	if err != nil {
		t.Fatalf("GenerateYearly: %v", err)
	}

	details := period.Yearly
	if details == nil {
		t.Fatal("yearly details missing")
	}
	if details.YearAnimal != "Dragon" {
		t.Errorf("2024 year animal = %s, want Dragon", details.YearAnimal)
	}
	if details.YearElement != YearElement(2024) {
		t.Errorf("year element = %s, want %s", details.YearElement, YearElement(2024))
	}
	if period.Confidence != 0.5 {
		t.Errorf("confidence = %.1f, want 0.5", period.Confidence)
	}

	windowStart := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	if details.NewYearDate.Before(windowStart) || details.NewYearDate.After(windowEnd) {
		t.Errorf("new year date %s outside the Jan 21 - Feb 20 window", details.NewYearDate.Format("2006-01-02"))
	}

	if len(details.LifeAreas) != 6 {
		t.Errorf("life areas = %d, want 6", len(details.LifeAreas))
	}
	if len(details.MajorEvents) < 2 {
		t.Errorf("major events = %d, want at least the year theme plus the element relation", len(details.MajorEvents))
	}
	if len(details.Remedies) == 0 {
		t.Error("yearly remedies are empty")
	}
}

func TestYearAnimalAndElement(t *testing.T) {
	tests := []struct {
		year        int
		wantAnimal  model.Animal
		wantElement model.Element
	}{
		{2024, "Dragon", model.ElementMetal},
		{1984, "Rat", model.ElementWood},
		{1990, "Horse", model.ElementWood},
		{1964, "Dragon", model.ElementMetal},
		{2000, "Dragon", model.ElementFire},
	}

	for _, tt := range tests {
		if got := YearAnimal(tt.year); got != tt.wantAnimal {
			t.Errorf("YearAnimal(%d) = %s, want %s", tt.year, got, tt.wantAnimal)
		}
		if got := YearElement(tt.year); got != tt.wantElement {
			t.Errorf("YearElement(%d) = %s, want %s", tt.year, got, tt.wantElement)
		}
	}
}

func TestGenerateHoroscopeDispatch(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, htype := range []model.HoroscopeType{
		model.HoroscopeDaily, model.HoroscopeWeekly, model.HoroscopeMonthly, model.HoroscopeYearly,
	} {
		period, err := GenerateHoroscope(chart, htype, date)
		if err != nil {
			t.Errorf("GenerateHoroscope(%s): %v", htype, err)
			continue
		}
		if period.Type != htype {
			t.Errorf("period type = %s, want %s", period.Type, htype)
		}
	}

	var vErr *model.ValidationError
	if _, err := GenerateHoroscope(chart, "hourly", date); !errors.As(err, &vErr) {
		t.Errorf("unknown timeframe error = %v, want validation error", err)
	}
}

func TestGenerateHoroscopeNilChart(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, htype := range []model.HoroscopeType{
		model.HoroscopeDaily, model.HoroscopeWeekly, model.HoroscopeMonthly, model.HoroscopeYearly,
	} {
		if _, err := GenerateHoroscope(nil, htype, date); !errors.Is(err, model.ErrNoChart) {
			t.Errorf("GenerateHoroscope(nil, %s) = %v, want ErrNoChart", htype, err)
		}
	}
}

func TestGenerateHoroscopeDeterminism(t *testing.T) {
	chart := mustChart(t, horoscopeBirth)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	a, err := GenerateDaily(chart, date)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	b, err := GenerateDaily(chart, date)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	if a.Overall.Score != b.Overall.Score || a.Overall.Summary != b.Overall.Summary {
		t.Errorf("same input produced different overall predictions")
	}
}
