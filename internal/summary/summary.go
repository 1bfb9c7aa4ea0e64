// Package summary turns computed requirements into label/value rows and
// renders them as an aligned table or a CSV file suitable for
// spreadsheet import.
package summary

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bkcalfee/colony-planner/internal/catalog"
	"github.com/bkcalfee/colony-planner/internal/planner"
)

// Row is a single label/value line of a summary.
type Row struct {
	Label string
	Value string
}

// Rows builds the printable summary rows for a requirements result:
// duplicants, days, the food line, a blank separator, and one row per
// material total. Material rows are sorted by material ID so output is
// deterministic.
func Rows(req planner.Requirements, cats catalog.Set) []Row {
	rows := []Row{
		{Label: "Duplicants", Value: strconv.Itoa(req.Duplicants)},
		{Label: "Days", Value: strconv.Itoa(req.Days)},
	}

	foodName := req.Food.ID
	if food, ok := cats.Foods[req.Food.ID]; ok {
		foodName = food.Name
	}
	rows = append(rows,
		Row{Label: "Food item", Value: foodName},
		Row{Label: "Food units needed", Value: fmt.Sprintf("%d %s", req.Food.Units, req.Food.Unit)},
	)

	rows = append(rows, Row{}, Row{Label: "Material", Value: "Total"})

	ids := make([]string, 0, len(req.Materials))
	for id := range req.Materials {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		name, unit := id, "units"
		if material, ok := cats.Materials[id]; ok {
			name = material.Name
			unit = material.Unit
		}
		rows = append(rows, Row{
			Label: name,
			Value: fmt.Sprintf("%s %s", formatQuantity(req.Materials[id]), unit),
		})
	}

	return rows
}

// formatQuantity prints whole quantities without a decimal point.
func formatQuantity(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}
