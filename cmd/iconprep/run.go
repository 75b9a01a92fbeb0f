package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"iconprep/pkg/config"
	"iconprep/pkg/converter"
	"iconprep/pkg/logger"
	"iconprep/pkg/platform"
	"iconprep/pkg/selector"
)

// loadConfig reads the optional config file and applies flag overrides
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.IsSet("platform") {
		cfg.Packager.Platform = platform.Normalize(cmd.String("platform"))
	}
	if icons := cmd.StringSlice("icon"); len(icons) == 1 {
		cfg.Packager.Icon = config.SingleIcon(icons[0])
	} else if len(icons) > 1 {
		cfg.Packager.Icon = config.IconList(icons...)
	}
	if cmd.IsSet("tray") {
		cfg.App.Tray = cmd.String("tray")
	}
	if cmd.IsSet("backend") {
		cfg.Converter.Backend = cmd.String("backend")
	}
	if cmd.IsSet("output-dir") {
		cfg.Converter.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("log-level") {
		cfg.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Logging.Format = cmd.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSelector(cfg *config.Config, log *slog.Logger) (*selector.Selector, error) {
	conv, err := converter.New(cfg.Converter, log)
	if err != nil {
		return nil, err
	}
	return selector.New(conv, log), nil
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug("Configuration loaded",
		"config_file", cmd.String("config"),
		"platform", cfg.Packager.Platform,
		"icon", cfg.Packager.Icon,
		"backend", cfg.Converter.Backend)

	sel, err := newSelector(cfg, log)
	if err != nil {
		return err
	}

	result := sel.Convert(*cfg)

	data, err := result.Marshal()
	if err != nil {
		return err
	}

	if path := cmd.String("out"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	} else if _, err := cmd.Root().Writer.Write(data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	printSummary(cmd.Root().ErrWriter, cfg.Packager.Icon, result.Packager.Icon)
	return nil
}

func runPlan(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	sel, err := newSelector(cfg, log)
	if err != nil {
		return err
	}

	plan := sel.Plan(*cfg)
	w := cmd.Root().Writer
	fmt.Fprintf(w, "platform:   %s\n", cfg.Packager.Platform)
	fmt.Fprintf(w, "icon:       %s\n", plan.Source)
	fmt.Fprintf(w, "action:     %s\n", plan.Action)
	if plan.Action == selector.ActionMacOS {
		fmt.Fprintf(w, "needs icns: %t\n", plan.NeedsIcns)
		fmt.Fprintf(w, "tray icon:  %t\n", plan.Tray)
	}
	return nil
}

// printSummary reports the icon change on stderr, coloured when it is a terminal
func printSummary(w io.Writer, before, after config.Icon) {
	colored := false
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colored = true
	}
	label := func(attr color.Attribute, text string) string {
		c := color.New(attr)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint(text)
	}

	switch {
	case !before.IsSet():
		fmt.Fprintln(w, label(color.FgCyan, "No icon configured"))
	case !after.IsSet():
		fmt.Fprintf(w, "%s %s\n", label(color.FgRed, "Icon cleared:"), before)
	case before.String() == after.String():
		fmt.Fprintf(w, "%s %s\n", label(color.FgYellow, "Icon unchanged:"), after)
	default:
		fmt.Fprintf(w, "%s %s -> %s\n", label(color.FgGreen, "Icon converted:"), before, after)
	}
}
