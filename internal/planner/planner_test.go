package planner

import (
	"errors"
	"testing"

	"github.com/bkcalfee/colony-planner/internal/catalog"
)

func testCatalogs() catalog.Set {
	return catalog.Default()
}

func TestComputeRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		req           Request
		wantUnits     int
		wantUnit      string
		wantMaterials map[string]float64
		wantErr       error
	}{
		{
			name: "DemoColony",
			req: Request{
				Duplicants: 3,
				Days:       7,
				Food:       "basic_meal",
				Buildings:  map[string]int{"simple_bed": 3, "oxygen_generator": 1},
			},
			wantUnits: 21,
			wantUnit:  "plate",
			wantMaterials: map[string]float64{
				"iron_ore": 110,
				"algae":    10,
			},
		},
		{
			name: "SingleDuplicantMushrooms",
			req: Request{
				Duplicants: 1,
				Days:       1,
				Food:       "mushroom",
			},
			wantUnits:     10,
			wantUnit:      "kg",
			wantMaterials: map[string]float64{},
		},
		{
			name: "ExactDivisionNeedsNoExtraUnit",
			req: Request{
				Duplicants: 1,
				Days:       1,
				Food:       "grilled_mushroom",
			},
			// 1200 calories / 400 per plate = exactly 3
			wantUnits:     3,
			wantUnit:      "plate",
			wantMaterials: map[string]float64{},
		},
		{
			name: "ZeroDuplicantsStillCountsBuildings",
			req: Request{
				Duplicants: 0,
				Days:       30,
				Food:       "basic_meal",
				Buildings:  map[string]int{"water_pump": 2},
			},
			wantUnits: 0,
			wantUnit:  "plate",
			wantMaterials: map[string]float64{
				"iron_ore": 80,
			},
		},
		{
			name: "ZeroDaysNoFood",
			req: Request{
				Duplicants: 5,
				Days:       0,
				Food:       "mushroom",
			},
			wantUnits:     0,
			wantUnit:      "kg",
			wantMaterials: map[string]float64{},
		},
		{
			name: "UnknownBuildingIsSkipped",
			req: Request{
				Duplicants: 1,
				Days:       1,
				Food:       "basic_meal",
				Buildings:  map[string]int{"teleporter": 4, "simple_bed": 1},
			},
			wantUnits: 1,
			wantUnit:  "plate",
			wantMaterials: map[string]float64{
				"iron_ore": 20,
			},
		},
		{
			name: "ZeroCountContributesNothing",
			req: Request{
				Duplicants: 1,
				Days:       1,
				Food:       "basic_meal",
				Buildings:  map[string]int{"oxygen_generator": 0},
			},
			wantUnits:     1,
			wantUnit:      "plate",
			wantMaterials: map[string]float64{},
		},
		{
			name: "UnknownFood",
			req: Request{
				Duplicants: 3,
				Days:       7,
				Food:       "does_not_exist",
				Buildings:  map[string]int{"simple_bed": 1},
			},
			wantErr: ErrUnknownFood,
		},
	}

	cats := testCatalogs()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := New().ComputeRequirements(tc.req, cats.Foods, cats.Buildings)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			if got.Duplicants != tc.req.Duplicants || got.Days != tc.req.Days {
				t.Fatalf("expected %d duplicants over %d days, got %d over %d",
					tc.req.Duplicants, tc.req.Days, got.Duplicants, got.Days)
			}
			if got.Food.ID != tc.req.Food {
				t.Fatalf("expected food %q, got %q", tc.req.Food, got.Food.ID)
			}
			if got.Food.Units != tc.wantUnits {
				t.Fatalf("expected %d food units, got %d", tc.wantUnits, got.Food.Units)
			}
			if got.Food.Unit != tc.wantUnit {
				t.Fatalf("expected unit %q, got %q", tc.wantUnit, got.Food.Unit)
			}
			if !equalTotals(got.Materials, tc.wantMaterials) {
				t.Fatalf("unexpected material totals: got %v want %v", got.Materials, tc.wantMaterials)
			}
		})
	}
}

func TestComputeRequirementsRoundsUpRemainder(t *testing.T) {
	t.Parallel()

	// 500-calorie rations do not divide the 1200-calorie daily need, so a
	// partial unit must round up.
	foods := catalog.FoodCatalog{
		"ration": {Name: "Ration", Calories: 500, Unit: "box"},
	}

	got, err := New().ComputeRequirements(Request{
		Duplicants: 1, Days: 1, Food: "ration",
	}, foods, catalog.BuildingCatalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Food.Units != 3 {
		t.Fatalf("expected 3 boxes for 1200 calories at 500 each, got %d", got.Food.Units)
	}
}

func TestComputeRequirementsCeilingBounds(t *testing.T) {
	t.Parallel()

	cats := testCatalogs()
	for duplicants := 0; duplicants <= 5; duplicants++ {
		for days := 0; days <= 5; days++ {
			for foodID, food := range cats.Foods {
				req := Request{Duplicants: duplicants, Days: days, Food: foodID}
				got, err := New().ComputeRequirements(req, cats.Foods, cats.Buildings)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				needed := duplicants * days * 1200
				if got.Food.Units*food.Calories < needed {
					t.Fatalf("%d units of %s cover only %d of %d calories",
						got.Food.Units, foodID, got.Food.Units*food.Calories, needed)
				}
				if got.Food.Units > 0 && (got.Food.Units-1)*food.Calories >= needed {
					t.Fatalf("%d units of %s is not minimal for %d calories", got.Food.Units, foodID, needed)
				}
				if needed == 0 && got.Food.Units != 0 {
					t.Fatalf("expected zero units for zero calories, got %d", got.Food.Units)
				}
			}
		}
	}
}

func TestComputeRequirementsMaterialsAreAdditive(t *testing.T) {
	t.Parallel()

	cats := testCatalogs()

	compute := func(counts map[string]int) map[string]float64 {
		t.Helper()
		got, err := New().ComputeRequirements(Request{
			Duplicants: 1, Days: 1, Food: "basic_meal", Buildings: counts,
		}, cats.Foods, cats.Buildings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return got.Materials
	}

	two := compute(map[string]int{"simple_bed": 2})
	three := compute(map[string]int{"simple_bed": 3})
	five := compute(map[string]int{"simple_bed": 5})

	for id, total := range five {
		if sum := two[id] + three[id]; sum != total {
			t.Fatalf("totals not additive for %s: %v + %v != %v", id, two[id], three[id], total)
		}
	}
}

func TestComputeRequirementsDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	cats := testCatalogs()
	counts := map[string]int{"simple_bed": 2, "bogus": 1}

	first, err := New().ComputeRequirements(Request{
		Duplicants: 2, Days: 3, Food: "mushroom", Buildings: counts,
	}, cats.Foods, cats.Buildings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := New().ComputeRequirements(Request{
		Duplicants: 2, Days: 3, Food: "mushroom", Buildings: counts,
	}, cats.Foods, cats.Buildings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts["simple_bed"] != 2 || counts["bogus"] != 1 {
		t.Fatalf("input building counts mutated: %v", counts)
	}
	if first.Food.Units != second.Food.Units || !equalTotals(first.Materials, second.Materials) {
		t.Fatalf("repeated calls disagree: %v vs %v", first, second)
	}
}

func equalTotals(got, want map[string]float64) bool {
	if len(got) != len(want) {
		return false
	}
	for k, wantVal := range want {
		if gotVal, ok := got[k]; !ok || gotVal != wantVal {
			return false
		}
	}
	return true
}

func BenchmarkComputeRequirements(b *testing.B) {
	cats := catalog.Default()
	p := New()
	req := Request{
		Duplicants: 12,
		Days:       100,
		Food:       "basic_meal",
		Buildings:  map[string]int{"simple_bed": 12, "oxygen_generator": 3, "water_pump": 2},
	}
	for i := 0; i < b.N; i++ {
		if _, err := p.ComputeRequirements(req, cats.Foods, cats.Buildings); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
