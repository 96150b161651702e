package telegram

import (
	"fmt"
	"strings"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

func formatDaily(period *model.HoroscopePeriod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Гороскоп на %s (%s)</b>\n\n", period.Range.Start.Format("02.01.2006"), period.AnimalSign)
	fmt.Fprintf(&b, "Оценка дня: <b>%.2f (%s)</b>\n", period.Overall.Score, period.Overall.Rating)
	fmt.Fprintf(&b, "%s\n\n", period.Overall.Summary)

	for _, category := range []string{
		model.CategoryWealth, model.CategoryCareer, model.CategoryHealth,
		model.CategoryRelationships, model.CategoryFamily, model.CategorySpiritual,
	} {
		pred, ok := period.Categories[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "<b>%s</b>: %s\n", category, pred.Prediction)
	}

	if period.Daily != nil && period.Daily.AuspiciousWindow != "" {
		fmt.Fprintf(&b, "\nБлагоприятное окно: %s\n", period.Daily.AuspiciousWindow)
	}
	fmt.Fprintf(&b, "Фаза Луны: %s", period.Lunar.Phase)
	return b.String()
}

func formatChart(chart *model.BirthChart) string {
	var b strings.Builder
	b.WriteString("<b>Карта четырёх столпов</b>\n\n")
	names := []string{"Год", "Месяц", "День", "Час"}
	for i, pillar := range chart.Pillars.Pillars() {
		fmt.Fprintf(&b, "%s: %s-%s (%s, %s)\n", names[i], pillar.Stem, pillar.Branch, pillar.Element, pillar.Animal)
	}
	if chart.Elements != nil {
		fmt.Fprintf(&b, "\nСильная стихия: %s\n", chart.Elements.Strongest)
		fmt.Fprintf(&b, "Слабая стихия: %s\n", chart.Elements.Weakest)
		fmt.Fprintf(&b, "Баланс: %s\n", chart.Elements.Balance)
	}
	if chart.NineStar != nil {
		fmt.Fprintf(&b, "Звезда рождения: %d %s\n", chart.NineStar.BirthStar.Number, chart.NineStar.BirthStar.Name)
	}
	return b.String()
}

func formatCompatibility(result *model.CompatibilityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s + %s</b>\n\n", result.Sign1, result.Sign2)
	fmt.Fprintf(&b, "Оценка: <b>%.1f / 10</b>\n", result.OverallScore)
	fmt.Fprintf(&b, "Тип отношений: %s\n\n", result.RelationshipType)
	fmt.Fprintf(&b, "%s\n", result.Analysis.Summary)
	if len(result.Analysis.Recommendations) > 0 {
		b.WriteString("\nРекомендации:\n")
		for _, rec := range result.Analysis.Recommendations {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
	}
	return b.String()
}
