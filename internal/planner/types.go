package planner

import (
	"github.com/bkcalfee/colony-planner/internal/catalog"
)

// Request describes a single planning request: how many duplicants to
// feed for how many days, which food to stock, and how many of each
// building to construct.
type Request struct {
	Duplicants int
	Days       int
	Food       string
	Buildings  map[string]int
}

// FoodNeed is the computed food line of a plan. Units is the rounded-up
// number of food units required to cover the caloric need.
type FoodNeed struct {
	ID    string
	Units int
	Unit  string
}

// Requirements is the computed output of a planning request: the food
// units needed and the aggregated material totals keyed by material ID.
type Requirements struct {
	Duplicants int
	Days       int
	Food       FoodNeed
	Materials  map[string]float64
}

// Planner describes the behaviour required from a requirements planner.
type Planner interface {
	ComputeRequirements(req Request, foods catalog.FoodCatalog, buildings catalog.BuildingCatalog) (Requirements, error)
}
