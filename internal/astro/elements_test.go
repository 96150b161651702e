package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

func pillarOf(t *testing.T, stem model.Stem, branch model.Branch) model.Pillar {
	t.Helper()
	element, err := StemElement(stem)
	if err != nil {
		t.Fatalf("StemElement(%s): %v", stem, err)
	}
	animal, err := BranchAnimal(branch)
	if err != nil {
		t.Fatalf("BranchAnimal(%s): %v", branch, err)
	}
	return model.Pillar{Stem: stem, Branch: branch, Element: element, Animal: animal}
}

// Four pillars at weight 1.0 plus four branch elements at weight 0.5 must
// always sum to 6.0.
func TestAnalyzeElementsTotalWeight(t *testing.T) {
	charts := []model.BirthMoment{
		{Year: 1984, Month: 6, Day: 1, Hour: 12},
		{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30},
		{Year: 2024, Month: 2, Day: 10, Hour: 8},
	}

	for _, birth := range charts {
		chart := mustChart(t, birth)
		balance, err := AnalyzeElements(chart)
		if err != nil {
			t.Fatalf("AnalyzeElements: %v", err)
		}
		var total float64
		for _, count := range balance.Counts {
			total += count
		}
		if math.Abs(total-6.0) > 1e-9 {
			t.Errorf("element counts for %+v sum to %.2f, want 6.0", birth, total)
		}
		if len(balance.Counts) != 5 {
			t.Errorf("counts cover %d elements, want 5", len(balance.Counts))
		}
	}
}

// A chart of four identical Jia-Zi pillars concentrates Wood 4.0 and
// Water 2.0, leaving the other three elements empty.
func TestAnalyzeElementsUniformChart(t *testing.T) {
	p := pillarOf(t, "Jia", "Zi")
	chart := &model.FourPillarsChart{Year: p, Month: p, Day: p, Hour: p}

	balance, err := AnalyzeElements(chart)
	if err != nil {
		t.Fatalf("AnalyzeElements: %v", err)
	}

	if balance.Counts[model.ElementWood] != 4.0 {
		t.Errorf("Wood count = %.1f, want 4.0", balance.Counts[model.ElementWood])
	}
	if balance.Counts[model.ElementWater] != 2.0 {
		t.Errorf("Water count = %.1f, want 2.0", balance.Counts[model.ElementWater])
	}
	if balance.Strongest != model.ElementWood {
		t.Errorf("strongest = %s, want Wood", balance.Strongest)
	}
	// Fire is the first zero-count element in traversal order
	if balance.Weakest != model.ElementFire {
		t.Errorf("weakest = %s, want Fire (tie broken by traversal order)", balance.Weakest)
	}
	if balance.Balance != model.BalanceSeverely {
		t.Errorf("balance class = %s, want %s", balance.Balance, model.BalanceSeverely)
	}
}

func TestAnalyzeElementsRelationships(t *testing.T) {
	chart := mustChart(t, model.BirthMoment{Year: 1984, Month: 6, Day: 1, Hour: 12})
	balance, err := AnalyzeElements(chart)
	if err != nil {
		t.Fatalf("AnalyzeElements: %v", err)
	}

	if len(balance.Relationships) != 5 {
		t.Fatalf("relationships cover %d elements, want 5", len(balance.Relationships))
	}
	wood := balance.Relationships[model.ElementWood]
	if wood.Generates != model.ElementFire || wood.Controls != model.ElementEarth {
		t.Errorf("Wood relationships = %+v, want generates Fire, controls Earth", wood)
	}
	if wood.GeneratedBy != model.ElementWater || wood.ControlledBy != model.ElementMetal {
		t.Errorf("Wood inverse relationships = %+v, want generated by Water, controlled by Metal", wood)
	}
}

func TestAnalyzeElementsNilChart(t *testing.T) {
	if _, err := AnalyzeElements(nil); !errors.Is(err, model.ErrNoChart) {
		t.Errorf("AnalyzeElements(nil) = %v, want ErrNoChart", err)
	}
}

// Band boundaries are inclusive on the upper edge of each class.
func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		spread float64
		want   model.BalanceClass
	}{
		{0, model.BalanceWell},
		{0.5, model.BalanceWell},
		{0.51, model.BalanceMostly},
		{1.0, model.BalanceMostly},
		{1.5, model.BalanceSlightly},
		{2.0, model.BalanceUneven},
		{2.01, model.BalanceSeverely},
		{4.0, model.BalanceSeverely},
	}

	for _, tt := range tests {
		if got := classifyBalance(tt.spread); got != tt.want {
			t.Errorf("classifyBalance(%.2f) = %s, want %s", tt.spread, got, tt.want)
		}
	}
}

// The score is directional: generating is rated higher than being
// generated, and controlling less harshly than being controlled.
func TestElementCompatibility(t *testing.T) {
	tests := []struct {
		name   string
		e1, e2 model.Element
		want   float64
	}{
		{"identical", model.ElementWood, model.ElementWood, 1.0},
		{"generates forward", model.ElementWood, model.ElementFire, 0.8},
		{"generates backward", model.ElementFire, model.ElementWood, 0.6},
		{"controls forward", model.ElementWood, model.ElementEarth, -0.5},
		{"controls backward", model.ElementEarth, model.ElementWood, -0.7},
		{"water feeds wood", model.ElementWater, model.ElementWood, 0.8},
		{"metal cuts wood", model.ElementMetal, model.ElementWood, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementCompatibility(tt.e1, tt.e2); got != tt.want {
				t.Errorf("ElementCompatibility(%s, %s) = %.1f, want %.1f", tt.e1, tt.e2, got, tt.want)
			}
		})
	}
}

func TestSuggestRemedies(t *testing.T) {
	p := pillarOf(t, "Jia", "Zi")
	chart := &model.FourPillarsChart{Year: p, Month: p, Day: p, Hour: p}
	balance, err := AnalyzeElements(chart)
	if err != nil {
		t.Fatalf("AnalyzeElements: %v", err)
	}

	remedy := SuggestRemedies(balance)
	if remedy.Element != balance.Weakest {
		t.Errorf("remedy element = %s, want weakest %s", remedy.Element, balance.Weakest)
	}
	if len(remedy.Colors) == 0 || len(remedy.Directions) == 0 || remedy.Advice == "" {
		t.Errorf("remedy for %s is incomplete: %+v", balance.Weakest, remedy)
	}

	if got := SuggestRemedies(nil); got.Element != "" {
		t.Errorf("SuggestRemedies(nil) = %+v, want zero remedy", got)
	}
}
