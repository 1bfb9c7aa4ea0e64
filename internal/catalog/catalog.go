package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidCatalog indicates the catalog data violates validation rules.
	ErrInvalidCatalog = errors.New("catalog data is invalid")
)

// Food describes an edible item and its caloric value per unit.
type Food struct {
	Name     string `json:"name" yaml:"name"`
	Calories int    `json:"calories" yaml:"calories"`
	Unit     string `json:"unit" yaml:"unit"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// Building describes a structure and the raw materials one unit costs.
type Building struct {
	Name      string             `json:"name" yaml:"name"`
	Materials map[string]float64 `json:"materials" yaml:"materials"`
}

// Material describes a raw resource, used for presentation only.
type Material struct {
	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit" yaml:"unit"`
	Desc string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

// FoodCatalog maps food identifiers to their definitions.
type FoodCatalog map[string]Food

// BuildingCatalog maps building identifiers to their definitions.
type BuildingCatalog map[string]Building

// MaterialCatalog maps material identifiers to their definitions.
type MaterialCatalog map[string]Material

// Set bundles the three reference catalogs. A Set is loaded once at
// startup and treated as immutable afterwards.
type Set struct {
	Foods     FoodCatalog     `yaml:"foods"`
	Buildings BuildingCatalog `yaml:"buildings"`
	Materials MaterialCatalog `yaml:"materials"`
}

// Default returns a copy of the built-in sample catalogs. Values are
// illustrative rather than game-accurate.
func Default() Set {
	return defaultSet.Clone()
}

var defaultSet = Set{
	Foods: FoodCatalog{
		"mushroom":         {Name: "Mushroom", Calories: 120, Unit: "kg", Desc: "Raw food"},
		"grilled_mushroom": {Name: "Grilled Mushroom", Calories: 400, Unit: "plate", Desc: "Cooked meal"},
		"basic_meal":       {Name: "Basic Meal", Calories: 1200, Unit: "plate", Desc: "Full meal"},
	},
	Buildings: BuildingCatalog{
		"simple_bed":       {Name: "Simple Cot", Materials: map[string]float64{"iron_ore": 20}},
		"oxygen_generator": {Name: "O2 Generator", Materials: map[string]float64{"iron_ore": 50, "algae": 10}},
		"water_pump":       {Name: "Water Pump", Materials: map[string]float64{"iron_ore": 40}},
	},
	Materials: MaterialCatalog{
		"water":    {Name: "Water", Unit: "kg", Desc: "Liquid water"},
		"oxygen":   {Name: "Oxygen", Unit: "kg", Desc: "Breathable O2"},
		"algae":    {Name: "Algae", Unit: "kg", Desc: "Algae for oxygen production"},
		"coal":     {Name: "Coal", Unit: "kg", Desc: "Fuel for generators"},
		"iron_ore": {Name: "Iron Ore", Unit: "kg", Desc: "Basic building material"},
	},
}

// LoadFile reads a full replacement Set from a YAML file and validates it.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read catalog file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("parse catalog YAML: %w", err)
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks the Set against the catalog invariants: non-empty food
// and building tables, positive calories, non-negative material costs,
// and building costs that reference known materials.
func (s Set) Validate() error {
	if len(s.Foods) == 0 {
		return fmt.Errorf("%w: food catalog is empty", ErrInvalidCatalog)
	}
	if len(s.Buildings) == 0 {
		return fmt.Errorf("%w: building catalog is empty", ErrInvalidCatalog)
	}

	for id, food := range s.Foods {
		if food.Calories <= 0 {
			return fmt.Errorf("%w: food %q has non-positive calories %d", ErrInvalidCatalog, id, food.Calories)
		}
	}

	for id, building := range s.Buildings {
		for materialID, qty := range building.Materials {
			if qty < 0 {
				return fmt.Errorf("%w: building %q requires negative quantity of %q", ErrInvalidCatalog, id, materialID)
			}
			if _, ok := s.Materials[materialID]; !ok {
				return fmt.Errorf("%w: building %q references unknown material %q", ErrInvalidCatalog, id, materialID)
			}
		}
	}

	return nil
}

// IDs returns the food identifiers in sorted order.
func (c FoodCatalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IDs returns the building identifiers in sorted order.
func (c BuildingCatalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy so callers cannot mutate shared reference data.
func (s Set) Clone() Set {
	out := Set{
		Foods:     make(FoodCatalog, len(s.Foods)),
		Buildings: make(BuildingCatalog, len(s.Buildings)),
		Materials: make(MaterialCatalog, len(s.Materials)),
	}
	for id, food := range s.Foods {
		out.Foods[id] = food
	}
	for id, building := range s.Buildings {
		materials := make(map[string]float64, len(building.Materials))
		for materialID, qty := range building.Materials {
			materials[materialID] = qty
		}
		out.Buildings[id] = Building{Name: building.Name, Materials: materials}
	}
	for id, material := range s.Materials {
		out.Materials[id] = material
	}
	return out
}
