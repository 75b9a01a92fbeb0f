package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version information (set by GoReleaser during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "iconprep",
		Usage:   "Convert an application icon to the format a packaging platform expects",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "Convert the icon and print the resulting build configuration",
				Flags:  append(sharedFlags(), outFlag()),
				Action: runConvert,
			},
			{
				Name:   "plan",
				Usage:  "Show what convert would do without running any converter",
				Flags:  sharedFlags(),
				Action: runPlan,
			},
		},
		// Icon paths may contain commas; lists come from repeating --icon
		DisableSliceFlagSeparator: true,
	}
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML build configuration",
		},
		&cli.StringFlag{
			Name:    "platform",
			Aliases: []string{"p"},
			Usage:   "Target platform: win32, linux, darwin, mas",
		},
		&cli.StringSliceFlag{
			Name:    "icon",
			Aliases: []string{"i"},
			Usage:   "Icon path; repeat to pass a list (the first entry is used)",
		},
		&cli.StringFlag{
			Name:  "tray",
			Usage: `Tray setting; "false" disables tray icon generation`,
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Converter backend: shell, native, mock",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "Directory for converted icons (default: temp dir)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write the resulting configuration to this file instead of stdout",
	}
}
