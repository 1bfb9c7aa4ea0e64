package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Project is a user-defined planning request as it is persisted on disk.
// Field names match the original project file format.
type Project struct {
	Duplicants int            `json:"duplicants"`
	Days       int            `json:"days"`
	Food       string         `json:"food_choice"`
	Buildings  map[string]int `json:"buildings"`
}

// Save writes the project to path as indented JSON.
func Save(path string, p Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// Load reads a project back from a JSON file written by Save.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("read project file: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parse project JSON: %w", err)
	}
	return p, nil
}

// Sample returns the built-in demo project, small enough to run without
// any interactive input.
func Sample() Project {
	return Project{
		Duplicants: 3,
		Days:       7,
		Food:       "basic_meal",
		Buildings:  map[string]int{"simple_bed": 3, "oxygen_generator": 1},
	}
}

// BaseName returns a timestamped file base for saving a project and its
// summary when the user does not pick a name.
func BaseName(now time.Time) string {
	return "plan_" + now.Format("20060102_150405")
}
