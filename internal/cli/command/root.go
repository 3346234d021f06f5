// Package command defines the CLI commands for planka.
//
// It uses urfave/cli/v2 for command parsing. The surface is a flat set
// of hyphenated subcommands, each mapping to exactly one API operation.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/infra/buildinfo"
	"github.com/hauxir/planka-cli/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	commands := []*cli.Command{}
	commands = append(commands, authCommands()...)
	commands = append(commands, projectCommands()...)
	commands = append(commands, boardCommands()...)
	commands = append(commands, listCommands()...)
	commands = append(commands, cardCommands()...)
	commands = append(commands, commentCommands()...)
	commands = append(commands, labelCommands()...)
	commands = append(commands, taskCommands()...)
	commands = append(commands, userCommands()...)
	commands = append(commands, notificationCommands()...)
	commands = append(commands, activityCommand())

	return &cli.App{
		Name:     "planka",
		Usage:    "Manage Planka kanban boards from the command line",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Commands: commands,
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger.SetLevel("debug")
			}
			return nil
		},
	}
}

// globalFlags returns the flags available to all commands.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Config file path (default ~/.config/planka/config.json)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}
