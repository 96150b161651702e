package astro

import (
	"errors"
	"testing"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
)

// Compatibility must be symmetric: the pair is canonicalized before any
// factor is scored.
func TestCompatibilitySymmetry(t *testing.T) {
	for i := 0; i < len(ZodiacAnimals); i++ {
		for j := i + 1; j < len(ZodiacAnimals); j++ {
			a, b := ZodiacAnimals[i], ZodiacAnimals[j]

			forward, err := CalculateCompatibility(a, b, CompatibilityOptions{})
			if err != nil {
				t.Fatalf("CalculateCompatibility(%s, %s): %v", a, b, err)
			}
			backward, err := CalculateCompatibility(b, a, CompatibilityOptions{})
			if err != nil {
				t.Fatalf("CalculateCompatibility(%s, %s): %v", b, a, err)
			}

			if forward.OverallScore != backward.OverallScore {
				t.Errorf("score(%s, %s) = %v but score(%s, %s) = %v",
					a, b, forward.OverallScore, b, a, backward.OverallScore)
			}
			if forward.RelationshipType != backward.RelationshipType {
				t.Errorf("relationship type differs by argument order for %s/%s: %s vs %s",
					a, b, forward.RelationshipType, backward.RelationshipType)
			}
		}
	}
}

// Repeated calls with identical arguments must produce bit-identical
// scores: the factor fold runs in a fixed order, never in map order.
func TestCompatibilityScoreRepeatable(t *testing.T) {
	pairs := []struct {
		a, b model.Animal
		opts CompatibilityOptions
	}{
		{"Tiger", "Pig", CompatibilityOptions{}},
		{"Snake", "Monkey", CompatibilityOptions{}},
		{"Rat", "Dragon", CompatibilityOptions{IncludePolarity: true, IncludeDirection: true}},
	}
	for _, pair := range pairs {
		first, err := CalculateCompatibility(pair.a, pair.b, pair.opts)
		if err != nil {
			t.Fatalf("CalculateCompatibility(%s, %s): %v", pair.a, pair.b, err)
		}
		for i := 0; i < 100; i++ {
			again, err := CalculateCompatibility(pair.a, pair.b, pair.opts)
			if err != nil {
				t.Fatalf("CalculateCompatibility(%s, %s): %v", pair.a, pair.b, err)
			}
			if again.OverallScore != first.OverallScore {
				t.Fatalf("score(%s, %s) drifted between calls: %v then %v",
					pair.a, pair.b, first.OverallScore, again.OverallScore)
			}
		}
	}
}

func TestCompatibilityScoreBounds(t *testing.T) {
	matrix, err := CompatibilityMatrix(CompatibilityOptions{IncludePolarity: true, IncludeDirection: true})
	if err != nil {
		t.Fatalf("CompatibilityMatrix: %v", err)
	}
	if len(matrix) != 66 {
		t.Fatalf("matrix has %d pairs, want 66", len(matrix))
	}
	for key, result := range matrix {
		if result.OverallScore < 1 || result.OverallScore > 10 {
			t.Errorf("pair %s score %.2f out of [1, 10]", key, result.OverallScore)
		}
		if result.Analysis.Summary == "" {
			t.Errorf("pair %s has empty analysis summary", key)
		}
	}
}

func TestCompatibilityValidation(t *testing.T) {
	var vErr *model.ValidationError

	if _, err := CalculateCompatibility("Rat", "Rat", CompatibilityOptions{}); !errors.As(err, &vErr) {
		t.Errorf("identical signs error = %v, want validation error", err)
	}
	if _, err := CalculateCompatibility("Unicorn", "Rat", CompatibilityOptions{}); !errors.As(err, &vErr) {
		t.Errorf("unknown sign1 error = %v, want validation error", err)
	} else if vErr.Field != "sign1" {
		t.Errorf("unknown sign1 field = %q, want sign1", vErr.Field)
	}
	if _, err := CalculateCompatibility("Rat", "Unicorn", CompatibilityOptions{}); !errors.As(err, &vErr) {
		t.Errorf("unknown sign2 error = %v, want validation error", err)
	}
}

// Relationship type resolution: secret friend beats triangle, triangle
// beats polar opposite, everything else is neutral.
func TestRelationshipTypePriority(t *testing.T) {
	tests := []struct {
		name   string
		a, b   model.Animal
		want   string
		reason string
	}{
		{"secret friends", "Rat", "Ox", model.RelationSecretFriend, "Rat-Ox are secret friends"},
		{"adjacent in triangle", "Rat", "Dragon", model.RelationTriangleAdjacent, "positions 0 and 1 in the Rat triangle"},
		{"same triangle not adjacent", "Rat", "Monkey", model.RelationTriangleSame, "positions 0 and 2 in the Rat triangle"},
		{"polar opposites", "Rat", "Horse", model.RelationPolarOpposite, "six branches apart"},
		{"no structural relation", "Rat", "Tiger", model.RelationNeutral, "different triangles, not polar, not friends"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateCompatibility(tt.a, tt.b, CompatibilityOptions{})
			if err != nil {
				t.Fatalf("CalculateCompatibility(%s, %s): %v", tt.a, tt.b, err)
			}
			if result.RelationshipType != tt.want {
				t.Errorf("relationship(%s, %s) = %s, want %s (%s)",
					tt.a, tt.b, result.RelationshipType, tt.want, tt.reason)
			}
		})
	}
}

func TestAnalyzeTriangleCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		a, b      model.Animal
		wantScore float64
		wantRel   string
	}{
		{"adjacent members", "Rat", "Dragon", 9.0, model.RelationTriangleAdjacent},
		{"outer members", "Rat", "Monkey", 8.0, model.RelationTriangleSame},
		{"different triangles", "Rat", "Ox", 6.5, model.RelationNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, rel, err := AnalyzeTriangleCompatibility(tt.a, tt.b)
			if err != nil {
				t.Fatalf("AnalyzeTriangleCompatibility(%s, %s): %v", tt.a, tt.b, err)
			}
			if score != tt.wantScore || rel != tt.wantRel {
				t.Errorf("AnalyzeTriangleCompatibility(%s, %s) = %.1f %s, want %.1f %s",
					tt.a, tt.b, score, rel, tt.wantScore, tt.wantRel)
			}
		})
	}

	if _, _, err := AnalyzeTriangleCompatibility("Rat", "Rat"); err == nil {
		t.Error("identical signs accepted, want validation error")
	}
	if _, _, err := AnalyzeTriangleCompatibility("Unicorn", "Rat"); err == nil {
		t.Error("unknown sign accepted, want validation error")
	}
}

func TestCompatibilityOptionalFactors(t *testing.T) {
	base, err := CalculateCompatibility("Rat", "Tiger", CompatibilityOptions{})
	if err != nil {
		t.Fatalf("CalculateCompatibility: %v", err)
	}
	if _, ok := base.Breakdown["polarity"]; ok {
		t.Error("polarity factor present without the option")
	}
	if _, ok := base.Breakdown["direction"]; ok {
		t.Error("direction factor present without the option")
	}

	full, err := CalculateCompatibility("Rat", "Tiger", CompatibilityOptions{IncludePolarity: true, IncludeDirection: true})
	if err != nil {
		t.Fatalf("CalculateCompatibility with options: %v", err)
	}
	if _, ok := full.Breakdown["polarity"]; !ok {
		t.Error("polarity factor missing with the option enabled")
	}
	if _, ok := full.Breakdown["direction"]; !ok {
		t.Error("direction factor missing with the option enabled")
	}
	// Both Yang signs share polarity, scoring the lower 6.0
	if full.Breakdown["polarity"].Score != 6.0 {
		t.Errorf("Rat/Tiger polarity score = %.1f, want 6.0 (same polarity)", full.Breakdown["polarity"].Score)
	}
}

func TestPairKey(t *testing.T) {
	if PairKey("Dragon", "Rat") != "Rat-Dragon" {
		t.Errorf("PairKey(Dragon, Rat) = %s, want canonical Rat-Dragon", PairKey("Dragon", "Rat"))
	}
	if PairKey("Rat", "Dragon") != PairKey("Dragon", "Rat") {
		t.Error("PairKey is not order-independent")
	}
}

func TestCompatibilityTrends(t *testing.T) {
	trends, err := CompatibilityTrends("Rat", CompatibilityOptions{})
	if err != nil {
		t.Fatalf("CompatibilityTrends: %v", err)
	}

	if trends.Sign != "Rat" {
		t.Errorf("trends sign = %s, want Rat", trends.Sign)
	}
	if len(trends.Best) != 3 {
		t.Errorf("best pairings = %d, want 3", len(trends.Best))
	}
	if len(trends.Challenging) != 3 {
		t.Errorf("challenging pairings = %d, want 3", len(trends.Challenging))
	}

	total := 0
	for _, count := range trends.Distribution {
		total += count
	}
	if total != 11 {
		t.Errorf("distribution covers %d signs, want 11", total)
	}
	if trends.AverageScore < 1 || trends.AverageScore > 10 {
		t.Errorf("average score %.2f out of [1, 10]", trends.AverageScore)
	}

	// Best must outrank challenging
	if trends.Best[0].Score < trends.Challenging[len(trends.Challenging)-1].Score {
		t.Errorf("best score %.2f below worst score %.2f", trends.Best[0].Score, trends.Challenging[len(trends.Challenging)-1].Score)
	}

	if _, err := CompatibilityTrends("Unicorn", CompatibilityOptions{}); err == nil {
		t.Error("unknown sign accepted, want validation error")
	}
}
