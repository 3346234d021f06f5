package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
	"github.com/hauxir/planka-cli/internal/planka"
)

func cardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "card",
			Usage:     "Show card details",
			ArgsUsage: "CARD_ID",
			Action:    cardAction,
		},
		{
			Name:      "card-create",
			Usage:     "Create a new card in a list",
			ArgsUsage: "LIST_ID NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "description",
					Aliases: []string{"d"},
					Usage:   "Card description",
				},
				positionFlag("Position in list"),
			},
			Action: cardCreateAction,
		},
		{
			Name:      "card-update",
			Usage:     "Update a card",
			ArgsUsage: "CARD_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "New card name",
				},
				&cli.StringFlag{
					Name:    "description",
					Aliases: []string{"d"},
					Usage:   "New card description",
				},
				&cli.StringFlag{
					Name:    "list-id",
					Aliases: []string{"l"},
					Usage:   "Move to list ID",
				},
				&cli.StringFlag{
					Name:  "due-date",
					Usage: "Due date (ISO format)",
				},
				positionFlag("New position"),
			},
			Action: cardUpdateAction,
		},
		{
			Name:      "card-move",
			Usage:     "Move a card to a different list",
			ArgsUsage: "CARD_ID LIST_ID",
			Flags:     []cli.Flag{positionFlag("Position in new list")},
			Action:    cardMoveAction,
		},
		{
			Name:      "card-duplicate",
			Usage:     "Duplicate a card",
			ArgsUsage: "CARD_ID",
			Flags:     []cli.Flag{positionFlag("Position for the duplicate")},
			Action:    cardDuplicateAction,
		},
		{
			Name:      "card-delete",
			Usage:     "Delete a card",
			ArgsUsage: "CARD_ID",
			Flags:     []cli.Flag{forceFlag()},
			Action:    cardDeleteAction,
		},
	}
}

func cardAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	card, err := client.Card(ctx, cardID)
	if err != nil {
		return err
	}

	if format := outputFormat(c); format != output.FormatTable && format != "" {
		return formatData(format, card)
	}

	if err := output.FieldBlock(os.Stdout,
		"Card", card.Name,
		"ID", card.ID,
		"List ID", card.ListID,
		"Due", card.DueDate,
	); err != nil {
		return err
	}
	if card.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", card.Description)
	}
	return nil
}

func cardCreateAction(c *cli.Context) error {
	listID, err := arg(c, 0, "LIST_ID")
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

	fields := positionFields(c)
	if c.IsSet("description") {
		fields["description"] = c.String("description")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	card, err := client.CreateCard(ctx, listID, name, fields)
	if err != nil {
		return err
	}

	fmt.Printf("Created card: %s (ID: %s)\n", card.Name, card.ID)
	return nil
}

func cardUpdateAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
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
	if c.IsSet("description") {
		fields["description"] = c.String("description")
	}
	if c.IsSet("list-id") {
		fields["listId"] = c.String("list-id")
	}
	if c.IsSet("due-date") {
		fields["dueDate"] = c.String("due-date")
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

	card, err := client.UpdateCard(ctx, cardID, fields)
	if err != nil {
		return err
	}

	fmt.Printf("Updated card: %s\n", card.Name)
	return nil
}

func cardMoveAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}
	listID, err := arg(c, 1, "LIST_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	card, err := client.MoveCard(ctx, cardID, listID, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Moved card: %s\n", card.Name)
	return nil
}

func cardDuplicateAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	card, err := client.DuplicateCard(ctx, cardID, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Duplicated card: %s (ID: %s)\n", card.Name, card.ID)
	return nil
}

func cardDeleteAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	if !confirmed(c, "Are you sure you want to delete this card?") {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.DeleteCard(ctx, cardID); err != nil {
		return err
	}

	fmt.Println("Card deleted")
	return nil
}
