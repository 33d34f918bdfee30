package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/linuxmatters/templeforge/internal/cli"
	"github.com/linuxmatters/templeforge/internal/config"
	"github.com/linuxmatters/templeforge/internal/logger"
	"github.com/linuxmatters/templeforge/internal/manifest"
	"github.com/linuxmatters/templeforge/internal/renderer"
	"github.com/linuxmatters/templeforge/internal/ui"
	"github.com/linuxmatters/templeforge/internal/verify"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Output     string   `arg:"" name:"output" help:"Output directory (default: assets)" optional:""`
	Config     string   `help:"YAML settings file" type:"path" placeholder:"FILE"`
	Manifest   string   `help:"YAML asset manifest replacing the built-in list" type:"path" placeholder:"FILE"`
	Seed       *uint64  `help:"Seed for texture noise"`
	Only       []string `help:"Only generate assets whose path matches GLOB (repeatable)" placeholder:"GLOB" sep:"none"`
	List       bool     `help:"Print the selected manifest as YAML and exit"`
	SaveConfig string   `help:"Write the resolved settings to FILE as YAML and exit" type:"path" placeholder:"FILE"`
	Verify     bool     `help:"Read every asset back and check it after generating"`
	Sheet      string   `help:"Write a PNG contact sheet of the generated textures" type:"path" placeholder:"FILE"`
	Plain      bool     `help:"Log lines instead of the progress UI (automatic when stdout is not a terminal)"`
	NoPreview  bool     `help:"Disable texture preview in the progress UI"`
	LogLevel   string   `help:"Log level: debug, info, warn or error" placeholder:"LEVEL"`
	LogFile    string   `help:"Also write logs to FILE, rotated" type:"path" placeholder:"FILE"`
	Version    bool     `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("templeforge"),
		kong.Description(cli.Description),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if err := run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(CLI.Config, config.Overrides{
		OutputDir: CLI.Output,
		Seed:      CLI.Seed,
		Manifest:  CLI.Manifest,
		LogLevel:  CLI.LogLevel,
		LogFile:   CLI.LogFile,
	})
	if err != nil {
		return err
	}

	if CLI.SaveConfig != "" {
		if err := settings.SaveTo(CLI.SaveConfig); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		cli.PrintSuccess("Settings written to " + CLI.SaveConfig)
		return nil
	}

	entries := manifest.Default()
	if settings.Manifest != "" {
		if entries, err = manifest.Load(settings.Manifest); err != nil {
			return err
		}
	}
	if entries, err = manifest.Filter(entries, CLI.Only); err != nil {
		return err
	}

	if CLI.List {
		data, err := manifest.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fd := os.Stdout.Fd()
	plain := CLI.Plain || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))

	// The progress UI owns the terminal, so console logging is plain mode only
	if err := logger.Init(settings.Logging.Level, settings.Logging.LogFile, plain); err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("output %s, seed %d, %d assets selected", settings.OutputDir, settings.Seed, len(entries))

	gen := &manifest.Generator{
		Dir:    settings.OutputDir,
		Seed:   settings.Seed,
		Logger: logger.Log,
	}

	var sum manifest.Summary
	if plain {
		if sum, err = gen.Run(entries); err != nil {
			return err
		}
		cli.PrintSummary(gen.Dir, sum.Textures, sum.Models, sum.Sounds, sum.Bytes, sum.Elapsed)
	} else {
		if sum, err = runWithProgress(gen, entries); err != nil {
			return err
		}
	}

	if CLI.Sheet != "" {
		if err := writeSheet(CLI.Sheet, sum); err != nil {
			return err
		}
	}

	if CLI.Verify {
		return verifyAssets(gen.Dir, entries)
	}
	return nil
}

// runWithProgress generates in the background while the Bubbletea UI
// renders progress messages.
func runWithProgress(gen *manifest.Generator, entries []manifest.Entry) (manifest.Summary, error) {
	model := ui.NewModel(CLI.NoPreview)
	p := tea.NewProgram(model, tea.WithAltScreen())

	gen.OnProgress = func(ev manifest.Event) {
		p.Send(ui.FromEvent(ev))
	}

	var sum manifest.Summary
	var genErr error

	go func() {
		sum, genErr = gen.Run(entries)
		if genErr != nil {
			p.Send(ui.GenerationFailed{Err: genErr})
			return
		}
		p.Send(ui.GenerationComplete{Dir: gen.Dir, Summary: sum})
	}()

	if _, err := p.Run(); err != nil {
		return manifest.Summary{}, fmt.Errorf("running UI: %w", err)
	}

	// The generator may still be running after an early quit
	if model.Interrupted() {
		return manifest.Summary{}, errors.New("interrupted; assets written so far are left in place")
	}
	if genErr != nil {
		return sum, genErr
	}

	fmt.Print(model.CompletionSummary())
	return sum, nil
}

func writeSheet(path string, sum manifest.Summary) error {
	var tiles []renderer.Tile
	for _, r := range sum.Results {
		if r.Image != nil {
			tiles = append(tiles, renderer.Tile{Label: filepath.Base(r.Path), Image: r.Image})
		}
	}
	if len(tiles) == 0 {
		cli.PrintWarning("no textures generated, skipping contact sheet")
		return nil
	}

	sheet, err := renderer.ContactSheet(tiles, config.SheetColumns)
	if err != nil {
		return fmt.Errorf("building contact sheet: %w", err)
	}
	if err := renderer.SaveContactSheet(path, sheet); err != nil {
		return fmt.Errorf("saving contact sheet: %w", err)
	}

	logger.Info("contact sheet written", zap.String("path", path), zap.Int("textures", len(tiles)))
	cli.PrintSuccess(fmt.Sprintf("Contact sheet: %s (%d textures)", path, len(tiles)))
	return nil
}

func verifyAssets(dir string, entries []manifest.Entry) error {
	report := verify.Dir(dir, entries)
	if report.OK() {
		logger.Info("assets verified", zap.Int("checked", report.Checked))
		cli.PrintSuccess(fmt.Sprintf("Verified %d assets", report.Checked))
		return nil
	}

	logger.Error("verification failed", zap.Error(report.Err()))
	cli.PrintSection("Verification failures")
	for _, f := range report.Failures {
		cli.PrintInfo(f.Path, f.Err.Error())
	}
	return fmt.Errorf("%d of %d assets failed verification", len(report.Failures), report.Checked)
}
