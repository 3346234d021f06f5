package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/planka"
)

func listCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "list-create",
			Usage:     "Create a new list in a board",
			ArgsUsage: "BOARD_ID NAME",
			Flags:     []cli.Flag{positionFlag("Position in board")},
			Action:    listCreateAction,
		},
		{
			Name:      "list-update",
			Usage:     "Update a list",
			ArgsUsage: "LIST_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "New list name",
				},
				positionFlag("New position"),
			},
			Action: listUpdateAction,
		},
		{
			Name:      "list-delete",
			Usage:     "Delete a list",
			ArgsUsage: "LIST_ID",
			Flags:     []cli.Flag{forceFlag()},
			Action:    listDeleteAction,
		},
	}
}

func listCreateAction(c *cli.Context) error {
	boardID, err := arg(c, 0, "BOARD_ID")
	if err != nil {
		return err
	}
	name, err := arg(c, 1, "NAME")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := client.CreateList(ctx, boardID, name, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Created list: %s (ID: %s)\n", list.Name, list.ID)
	return nil
}

func listUpdateAction(c *cli.Context) error {
	listID, err := arg(c, 0, "LIST_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	fields := planka.Fields{}
	if c.IsSet("name") {
		fields["name"] = c.String("name")
	}
	if c.IsSet("position") {
		fields["position"] = c.Float64("position")
	}
	if len(fields) == 0 {
		fmt.Println("No updates provided")
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := client.UpdateList(ctx, listID, fields)
	if err != nil {
		return err
	}

	fmt.Printf("Updated list: %s\n", list.Name)
	return nil
}

func listDeleteAction(c *cli.Context) error {
	listID, err := arg(c, 0, "LIST_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	if !confirmed(c, "Are you sure you want to delete this list?") {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.DeleteList(ctx, listID); err != nil {
		return err
	}

	fmt.Println("List deleted")
	return nil
}
