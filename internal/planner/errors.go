package planner

import "errors"

var (
	// ErrUnknownFood is returned when the requested food identifier is not
	// present in the food catalog. It is the only error the planner raises.
	ErrUnknownFood = errors.New("unknown food identifier")
)
