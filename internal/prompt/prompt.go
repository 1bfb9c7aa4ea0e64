// Package prompt implements the interactive collector that builds a
// project from operator input. Malformed input is recovered locally by
// re-prompting or defaulting; the collector always yields a valid
// project.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bkcalfee/colony-planner/internal/catalog"
	"github.com/bkcalfee/colony-planner/internal/project"
)

// Collector gathers project input from in and writes prompts to out.
type Collector struct {
	scanner     *bufio.Scanner
	out         io.Writer
	catalogs    catalog.Set
	defaultFood string
}

// NewCollector constructs a Collector reading from in and prompting on out.
func NewCollector(in io.Reader, out io.Writer, catalogs catalog.Set, defaultFood string) *Collector {
	return &Collector{
		scanner:     bufio.NewScanner(in),
		out:         out,
		catalogs:    catalogs,
		defaultFood: defaultFood,
	}
}

// CollectProject walks the operator through duplicant count, day count,
// food choice, and per-building counts.
func (c *Collector) CollectProject() project.Project {
	fmt.Fprintln(c.out, "Create a colony resource project")

	duplicants := c.askInt("How many duplicants? ")
	days := c.askInt("How many days to plan for? ")

	fmt.Fprintln(c.out, "Available food choices:")
	for _, id := range c.catalogs.Foods.IDs() {
		food := c.catalogs.Foods[id]
		fmt.Fprintf(c.out, " - %s: %s (%d cal per %s)\n", id, food.Name, food.Calories, food.Unit)
	}

	foodChoice := c.askFood()

	fmt.Fprintln(c.out, "\nNow enter building counts. Press Enter to keep zero.")
	buildings := make(map[string]int)
	for _, id := range c.catalogs.Buildings.IDs() {
		count := c.askCount(fmt.Sprintf("How many %s? ", c.catalogs.Buildings[id].Name))
		if count > 0 {
			buildings[id] = count
		}
	}

	return project.Project{
		Duplicants: duplicants,
		Days:       days,
		Food:       foodChoice,
		Buildings:  buildings,
	}
}

// askInt prompts until the operator types a whole number. EOF yields zero.
func (c *Collector) askInt(prompt string) int {
	for {
		fmt.Fprint(c.out, prompt)
		line, ok := c.readLine()
		if !ok {
			return 0
		}
		value, err := strconv.Atoi(line)
		if err != nil || value < 0 {
			fmt.Fprintln(c.out, "Please type a whole number (e.g. 3). Try again.")
			continue
		}
		return value
	}
}

// askCount reads a single building count. Blank or invalid input counts
// as zero rather than re-prompting, so the operator can skip quickly.
func (c *Collector) askCount(prompt string) int {
	fmt.Fprint(c.out, prompt)
	line, ok := c.readLine()
	if !ok || line == "" {
		return 0
	}
	value, err := strconv.Atoi(line)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (c *Collector) askFood() string {
	fmt.Fprintf(c.out, "Choose food key from above (e.g. %s): ", c.defaultFood)
	line, ok := c.readLine()
	if ok && line != "" {
		if _, known := c.catalogs.Foods[line]; known {
			return line
		}
	}
	fmt.Fprintf(c.out, "Unknown food choice; defaulting to %q.\n", c.defaultFood)
	return c.defaultFood
}

func (c *Collector) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}
