// Command liftsheet tracks training sheets, their exercises and the
// progress of each recorded set from the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vanderheijden86/liftsheet/pkg/config"
	"github.com/vanderheijden86/liftsheet/pkg/ui"
	"github.com/vanderheijden86/liftsheet/pkg/version"
)

const usageText = `Usage: liftsheet [options] <command> [args]

Commands:
  list                          List sheets
  new <name> [notes]            Create a sheet
  rename <sheet>                Rename a sheet and edit its notes
  delete [-yes] <sheet>         Delete a sheet and its exercises
  show [-markdown] <sheet>      Show a sheet with progress
  add <sheet> -name N -reps R [-muscle M] [-weight KG] [-rest SEC]
                                Add an exercise
  edit <exercise>               Edit name and target muscle
  set <exercise>                Record a new set
  remove [-yes] <exercise>      Delete an exercise
  export [-out DIR] [-clipboard] [sheet]
                                Export sheets as Markdown
  shell                         Interactive menu

Sheets and exercises can be referenced by a unique ID prefix.

Options:
`

// usageError makes run exit with status 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type globalOptions struct {
	configPath string
	dataDir    string
	driver     string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("liftsheet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts globalOptions
	fs.StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: XDG config dir)")
	fs.StringVar(&opts.dataDir, "data-dir", "", "Directory for workout data")
	fs.StringVar(&opts.driver, "driver", "", "Storage driver: file, sqlite or memory")
	versionFlag := fs.Bool("version", false, "Show version")
	help := fs.Bool("help", false, "Show help")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *help {
		fmt.Fprint(stdout, usageText)
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "liftsheet %s\n", version.Version)
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	handler, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	a := openApp(cfg, stdin, stdout, stderr)

	runErr := handler(a, cmdArgs)
	if err := a.Close(); err != nil {
		a.log.WithError(err).Error("shutdown")
		if runErr == nil {
			runErr = err
		}
	}

	if runErr != nil {
		var ue *usageError
		if errors.As(runErr, &ue) {
			fmt.Fprintf(stderr, "Error: %v\n", ue)
			fmt.Fprintf(stderr, "Run 'liftsheet -help' for usage.\n")
			return 2
		}
		if errors.Is(runErr, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, ui.ErrorStyle.Render("Error: "+runErr.Error()))
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts globalOptions) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if opts.dataDir != "" {
		cfg.Storage.Dir = opts.dataDir
	}
	if opts.driver != "" {
		switch d := strings.ToLower(opts.driver); d {
		case config.DriverFile, config.DriverSQLite, config.DriverMemory:
			cfg.Storage.Driver = d
		default:
			return cfg, fmt.Errorf("unknown storage driver %q", opts.driver)
		}
	}
	return cfg, nil
}
