package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func labelCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "label-create",
			Usage:     "Create a label on a board",
			ArgsUsage: "BOARD_ID NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "color",
					Aliases: []string{"c"},
					Usage:   "Label color",
					Value:   "berry-red",
				},
				positionFlag("Position"),
			},
			Action: labelCreateAction,
		},
		{
			Name:      "label-add",
			Usage:     "Add a label to a card",
			ArgsUsage: "CARD_ID LABEL_ID",
			Action:    labelAddAction,
		},
		{
			Name:      "label-remove",
			Usage:     "Remove a label from a card",
			ArgsUsage: "CARD_ID LABEL_ID",
			Action:    labelRemoveAction,
		},
	}
}

func labelCreateAction(c *cli.Context) error {
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

	label, err := client.CreateLabel(ctx, boardID, name, c.String("color"), positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Created label: %s (ID: %s)\n", label.Name, label.ID)
	return nil
}

func labelAddAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}
	labelID, err := arg(c, 1, "LABEL_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := client.AddLabelToCard(ctx, cardID, labelID); err != nil {
		return err
	}

	fmt.Println("Label added to card")
	return nil
}

func labelRemoveAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}
	labelID, err := arg(c, 1, "LABEL_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.RemoveLabelFromCard(ctx, cardID, labelID); err != nil {
		return err
	}

	fmt.Println("Label removed from card")
	return nil
}
