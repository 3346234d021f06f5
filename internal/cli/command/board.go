package command

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
	"github.com/hauxir/planka-cli/internal/planka"
)

func boardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "board",
			Usage:     "Show board details with lists and cards",
			ArgsUsage: "BOARD_ID",
			Action:    boardAction,
		},
		{
			Name:      "board-create",
			Usage:     "Create a new board in a project",
			ArgsUsage: "PROJECT_ID NAME",
			Flags:     []cli.Flag{positionFlag("Position in project")},
			Action:    boardCreateAction,
		},
	}
}

func boardAction(c *cli.Context) error {
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

	detail, err := client.Board(ctx, boardID)
	if err != nil {
		return err
	}

	if format := outputFormat(c); format != output.FormatTable && format != "" {
		return formatData(format, detail)
	}

	lists := detail.Lists
	sort.Slice(lists, func(i, j int) bool { return lists[i].Position < lists[j].Position })

	for _, list := range lists {
		cards := cardsOfList(detail.Cards, list.ID)
		fmt.Printf("%s (%d cards)\n", list.Name, len(cards))

		table := output.NewTable("ID", "NAME")
		for _, card := range cards {
			table.AddRow(card.ID, card.Name)
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// cardsOfList filters the sideloaded cards down to one list, ordered by
// position.
func cardsOfList(cards []planka.Card, listID string) []planka.Card {
	var matched []planka.Card
	for _, card := range cards {
		if card.ListID == listID {
			matched = append(matched, card)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Position < matched[j].Position })
	return matched
}

func boardCreateAction(c *cli.Context) error {
	projectID, err := arg(c, 0, "PROJECT_ID")
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

	board, err := client.CreateBoard(ctx, projectID, name, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Created board: %s (ID: %s)\n", board.Name, board.ID)
	return nil
}
