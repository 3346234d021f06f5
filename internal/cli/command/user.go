package command

import (
	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
)

func userCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "users",
			Usage:  "List all users",
			Action: usersAction,
		},
	}
}

func usersAction(c *cli.Context) error {
	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := client.Users(ctx)
	if err != nil {
		return err
	}

	table := output.NewTable("ID", "NAME", "USERNAME", "EMAIL")
	for _, u := range users {
		table.AddRow(u.ID, u.Name, u.Username, u.Email)
	}
	return render(c, users, table)
}
