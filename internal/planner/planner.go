package planner

import (
	"fmt"

	"github.com/bkcalfee/colony-planner/internal/catalog"
)

// dailyCaloriesPerDuplicant is the fixed caloric need per duplicant per
// day. A deliberately simplified model parameter, not configuration.
const dailyCaloriesPerDuplicant = 1200

type colonyPlanner struct{}

// New creates a Planner for colony resource requirements.
func New() Planner {
	return &colonyPlanner{}
}

func (p *colonyPlanner) ComputeRequirements(req Request, foods catalog.FoodCatalog, buildings catalog.BuildingCatalog) (Requirements, error) {
	food, ok := foods[req.Food]
	if !ok {
		return Requirements{}, fmt.Errorf("%w: %q", ErrUnknownFood, req.Food)
	}

	totalCalories := 0
	if req.Duplicants > 0 && req.Days > 0 {
		totalCalories = req.Duplicants * req.Days * dailyCaloriesPerDuplicant
	}
	units := ceilDivide(totalCalories, food.Calories)

	materials := make(map[string]float64)
	for buildingID, count := range req.Buildings {
		building, known := buildings[buildingID]
		if !known {
			// Unknown building identifiers are tolerated and skipped.
			continue
		}
		if count <= 0 {
			continue
		}
		for materialID, perUnit := range building.Materials {
			materials[materialID] += perUnit * float64(count)
		}
	}

	return Requirements{
		Duplicants: req.Duplicants,
		Days:       req.Days,
		Food: FoodNeed{
			ID:    req.Food,
			Units: units,
			Unit:  food.Unit,
		},
		Materials: materials,
	}, nil
}

// ceilDivide returns the smallest n such that n*per >= total. Zero total
// needs zero units.
func ceilDivide(total, per int) int {
	n := total / per
	if total%per != 0 {
		n++
	}
	return n
}
