package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
)

func commentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "comments",
			Usage:     "List comments on a card",
			ArgsUsage: "CARD_ID",
			Action:    commentsAction,
		},
		{
			Name:      "comment-add",
			Usage:     "Add a comment to a card",
			ArgsUsage: "CARD_ID TEXT",
			Action:    commentAddAction,
		},
		{
			Name:      "comment-delete",
			Usage:     "Delete a comment",
			ArgsUsage: "COMMENT_ID",
			Flags:     []cli.Flag{forceFlag()},
			Action:    commentDeleteAction,
		},
	}
}

func commentsAction(c *cli.Context) error {
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

	comments, err := client.Comments(ctx, cardID)
	if err != nil {
		return err
	}

	if len(comments) == 0 && outputFormat(c) == output.FormatTable {
		fmt.Println("No comments")
		return nil
	}

	table := output.NewTable("ID", "AUTHOR", "TEXT")
	for _, comment := range comments {
		table.AddRow(comment.ID, comment.UserID, comment.Text)
	}
	return render(c, comments, table)
}

func commentAddAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
	if err != nil {
		return err
	}
	text, err := arg(c, 1, "TEXT")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comment, err := client.CreateComment(ctx, cardID, text)
	if err != nil {
		return err
	}

	fmt.Printf("Added comment (ID: %s)\n", comment.ID)
	return nil
}

func commentDeleteAction(c *cli.Context) error {
	commentID, err := arg(c, 0, "COMMENT_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	if !confirmed(c, "Are you sure you want to delete this comment?") {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	fmt.Println("Comment deleted")
	return nil
}
