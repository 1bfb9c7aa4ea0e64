package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/bkcalfee/colony-planner/internal/config"
	"github.com/bkcalfee/colony-planner/internal/logging"
)

func main() {
	app := kingpin.New("colonyplan", "Colony resource planner - estimates food and building materials for a colony project")
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	catalogFile := app.Flag("catalog", "Path to a YAML catalog file replacing the built-in reference data").String()
	defaultFood := app.Flag("default-food", "Fallback food identifier for invalid choices").String()
	verbose := app.Flag("verbose", "Enable informational logging").Short('v').Bool()

	newCmd := app.Command("new", "Create a project interactively and compute its requirements")
	newSave := newCmd.Flag("save", "Save the project JSON and summary CSV").Bool()
	newSaveAs := newCmd.Flag("save-as", "File base for saved output (default: timestamped)").String()

	demoCmd := app.Command("demo", "Compute requirements for the built-in demo project")
	demoSave := demoCmd.Flag("save", "Save the project JSON and summary CSV").Bool()
	demoSaveAs := demoCmd.Flag("save-as", "File base for saved output (default: timestamped)").String()

	runCmd := app.Command("run", "Load a project JSON file and compute its requirements")
	runFile := runCmd.Arg("project", "Project JSON file").Required().ExistingFile()
	runSave := runCmd.Flag("save", "Save the project JSON and summary CSV").Bool()
	runSaveAs := runCmd.Flag("save-as", "File base for saved output (default: timestamped)").String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{ConfigFile: *configFile}
	if *catalogFile != "" {
		overrides.CatalogFile = catalogFile
	}
	if *defaultFood != "" {
		overrides.DefaultFood = defaultFood
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewConsole(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	r := &runner{cfg: cfg, logger: logger, in: os.Stdin, out: os.Stdout}

	switch command {
	case newCmd.FullCommand():
		err = r.runNew(saveOptions(*newSave, *newSaveAs))
	case demoCmd.FullCommand():
		err = r.runDemo(saveOptions(*demoSave, *demoSaveAs))
	case runCmd.FullCommand():
		err = r.runFile(*runFile, saveOptions(*runSave, *runSaveAs))
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func saveOptions(save bool, base string) saveOpts {
	// --save-as implies saving.
	return saveOpts{enabled: save || base != "", base: base}
}
