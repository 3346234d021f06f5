package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
)

func notificationCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "notifications",
			Usage:  "List notifications",
			Action: notificationsAction,
		},
		{
			Name:   "notifications-read-all",
			Usage:  "Mark all notifications as read",
			Action: notificationsReadAllAction,
		},
	}
}

func notificationsAction(c *cli.Context) error {
	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	notifications, err := client.Notifications(ctx)
	if err != nil {
		return err
	}

	if len(notifications) == 0 && outputFormat(c) == output.FormatTable {
		fmt.Println("No notifications")
		return nil
	}

	table := output.NewTable("ID", "TYPE", "READ")
	for _, n := range notifications {
		read := "No"
		if n.IsRead {
			read = "Yes"
		}
		table.AddRow(n.ID, n.Type, read)
	}
	return render(c, notifications, table)
}

func notificationsReadAllAction(c *cli.Context) error {
	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	fmt.Println("All notifications marked as read")
	return nil
}
