package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/bkcalfee/colony-planner/internal/application"
	"github.com/bkcalfee/colony-planner/internal/catalog"
	"github.com/bkcalfee/colony-planner/internal/config"
	"github.com/bkcalfee/colony-planner/internal/planner"
	"github.com/bkcalfee/colony-planner/internal/project"
	"github.com/bkcalfee/colony-planner/internal/prompt"
	"github.com/bkcalfee/colony-planner/internal/summary"
)

// runner holds the shared dependencies of the CLI subcommands.
type runner struct {
	cfg    config.Config
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

type saveOpts struct {
	enabled bool
	base    string
}

func (r *runner) runNew(save saveOpts) error {
	catalogs, err := application.LoadCatalogs(r.cfg)
	if err != nil {
		return err
	}

	collector := prompt.NewCollector(r.in, r.out, catalogs, r.cfg.DefaultFood)
	proj := collector.CollectProject()

	return r.report(proj, catalogs, save)
}

func (r *runner) runDemo(save saveOpts) error {
	catalogs, err := application.LoadCatalogs(r.cfg)
	if err != nil {
		return err
	}
	r.logger.Info("using built-in demo project")
	return r.report(project.Sample(), catalogs, save)
}

func (r *runner) runFile(path string, save saveOpts) error {
	catalogs, err := application.LoadCatalogs(r.cfg)
	if err != nil {
		return err
	}

	proj, err := project.Load(path)
	if err != nil {
		return err
	}
	r.logger.Info("loaded project", zap.String("path", path))
	return r.report(proj, catalogs, save)
}

// report computes requirements for the project, prints the summary
// table, and optionally persists the project and its CSV summary.
func (r *runner) report(proj project.Project, catalogs catalog.Set, save saveOpts) error {
	req, err := planner.New().ComputeRequirements(planner.Request{
		Duplicants: proj.Duplicants,
		Days:       proj.Days,
		Food:       proj.Food,
		Buildings:  proj.Buildings,
	}, catalogs.Foods, catalogs.Buildings)
	if err != nil {
		return fmt.Errorf("compute requirements: %w", err)
	}

	rows := summary.Rows(req, catalogs)
	fmt.Fprintln(r.out, "\n--- Project Summary ---")
	if err := summary.RenderTable(r.out, rows); err != nil {
		return err
	}

	if !save.enabled {
		return nil
	}

	base := save.base
	if base == "" {
		base = project.BaseName(time.Now())
	}
	jsonPath := base + ".json"
	csvPath := base + "_summary.csv"

	if err := project.Save(jsonPath, proj); err != nil {
		return err
	}
	if err := summary.ExportCSV(csvPath, rows); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Saved %s and %s\n", jsonPath, csvPath)
	return nil
}
