package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Опорные точки шестидесятеричного цикла.
const (
	// referenceYear - 1984, год Цзя-Цзы: индекс ствола 0, ветви 0
	referenceYear = 1984
	// Смещения выравнивают опорный день 2000-01-01 на его ствол и ветвь
	dayStemOffset   = 6
	dayBranchOffset = 2
)

// CalculateBaZi выводит четыре столпа (год/месяц/день/час) из момента
// рождения через шестидесятеричный цикл и границы месяцев по солнечным
// терминам. Ошибки валидации входа возникают до любой математики столпов.
func CalculateBaZi(birth model.BirthMoment) (*model.FourPillarsChart, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	// Столп года: 1984 - опорный год Цзя-Цзы
	yearStemIdx := modInt(birth.Year-referenceYear, 10)
	yearBranchIdx := modInt(birth.Year-referenceYear, 12)
	yearPillar, err := buildPillar(yearStemIdx, yearBranchIdx)
	if err != nil {
		return nil, err
	}

	// Столп месяца: индекс месяца - единственный канонический источник,
	// долгота текущего солнечного термина, делённая на 30°
	birthDate := time.Date(birth.Year, time.Month(birth.Month), birth.Day,
		birth.Hour, birth.Minute, birth.Second, 0, time.UTC)
	term, err := CurrentSolarTerm(birthDate)
	if err != nil {
		return nil, err
	}
	monthIdx := int(term.Longitude/30) % 12
	monthStemIdx := modInt(yearStemIdx*2+monthIdx, 10)
	monthPillar, err := buildPillar(monthStemIdx, monthIdx)
	if err != nil {
		return nil, err
	}

	// Столп дня: целые сутки между днём рождения (время усечено) и опорным
	// днём 2000-01-01, оба с одинаковой поправкой часового пояса
	birthJD := GregorianToJulianDay(birth.Year, birth.Month, birth.Day, 0, 0, 0, birth.TimezoneOffset)
	refJD := GregorianToJulianDay(2000, 1, 1, 0, 0, 0, birth.TimezoneOffset)
	daysSinceReference := int(math.Round(birthJD - refJD))
	dayStemIdx := modInt(daysSinceReference+dayStemOffset, 10)
	dayBranchIdx := modInt(daysSinceReference+dayBranchOffset, 12)
	dayPillar, err := buildPillar(dayStemIdx, dayBranchIdx)
	if err != nil {
		return nil, err
	}

	// Столп часа: индекс двойного часа и ствол от ствола дня
	doubleHourIdx := birth.Hour / 2
	hourStemIdx := modInt(dayStemIdx*2+doubleHourIdx, 10)
	hourPillar, err := buildPillar(hourStemIdx, doubleHourIdx)
	if err != nil {
		return nil, err
	}

	return &model.FourPillarsChart{
		Year:  yearPillar,
		Month: monthPillar,
		Day:   dayPillar,
		Hour:  hourPillar,
	}, nil
}

// buildPillar собирает столп по индексам ствола и ветви; стихия и животное
// разрешаются только через таблицы, чтобы исключить рассогласование
func buildPillar(stemIdx, branchIdx int) (model.Pillar, error) {
	if stemIdx < 0 || stemIdx >= len(HeavenlyStems) {
		return model.Pillar{}, model.NewCalculationError("pillar",
			fmt.Errorf("индекс ствола %d вне диапазона", stemIdx))
	}
	if branchIdx < 0 || branchIdx >= len(EarthlyBranches) {
		return model.Pillar{}, model.NewCalculationError("pillar",
			fmt.Errorf("индекс ветви %d вне диапазона", branchIdx))
	}

	stem := HeavenlyStems[stemIdx]
	branch := EarthlyBranches[branchIdx]

	element, err := StemElement(stem)
	if err != nil {
		return model.Pillar{}, err
	}
	animal, err := BranchAnimal(branch)
	if err != nil {
		return model.Pillar{}, err
	}

	return model.Pillar{Stem: stem, Branch: branch, Element: element, Animal: animal}, nil
}

// ValidateChart проверяет, что все четыре столпа заполнены и значения
// стволов и ветвей принадлежат каноническим наборам
func ValidateChart(chart *model.FourPillarsChart) error {
	if chart == nil {
		return model.ErrNoChart
	}
	names := [4]string{"year", "month", "day", "hour"}
	for i, p := range chart.Pillars() {
		if p.Stem == "" || p.Branch == "" || p.Element == "" || p.Animal == "" {
			return model.NewValidationError(names[i], "столп заполнен не полностью")
		}
		if _, err := StemElement(p.Stem); err != nil {
			return model.NewValidationError(names[i], fmt.Sprintf("ствол %q не входит в канонический набор", p.Stem))
		}
		if _, err := BranchAnimal(p.Branch); err != nil {
			return model.NewValidationError(names[i], fmt.Sprintf("ветвь %q не входит в канонический набор", p.Branch))
		}
	}
	return nil
}
