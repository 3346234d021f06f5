package command

import (
	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
)

func activityCommand() *cli.Command {
	return &cli.Command{
		Name:      "activity",
		Usage:     "Show board activity",
		ArgsUsage: "BOARD_ID",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Number of actions to show",
				Value:   20,
			},
		},
		Action: activityAction,
	}
}

func activityAction(c *cli.Context) error {
	boardID, err := arg(c, 0, "BOARD_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	actions, err := client.BoardActions(ctx, boardID)
	if err != nil {
		return err
	}

	if limit := c.Int("limit"); limit > 0 && len(actions) > limit {
		actions = actions[:limit]
	}

	table := output.NewTable("TYPE", "USER", "DATA")
	for _, action := range actions {
		table.AddRow(action.Type, action.UserID, truncate(string(action.Data), 50))
	}
	return render(c, actions, table)
}

// truncate shortens a cell value for display, cutting on rune
// boundaries so multibyte text is never mangled.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
