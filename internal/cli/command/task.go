package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/planka"
)

func taskCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "tasklist-create",
			Usage:     "Create a task list on a card",
			ArgsUsage: "CARD_ID NAME",
			Flags:     []cli.Flag{positionFlag("Position")},
			Action:    taskListCreateAction,
		},
		{
			Name:      "task-create",
			Usage:     "Create a task in a task list",
			ArgsUsage: "TASKLIST_ID NAME",
			Flags:     []cli.Flag{positionFlag("Position")},
			Action:    taskCreateAction,
		},
		{
			Name:      "task-complete",
			Usage:     "Mark a task as complete",
			ArgsUsage: "TASK_ID",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "undo",
					Usage: "Mark as incomplete instead",
				},
			},
			Action: taskCompleteAction,
		},
		{
			Name:      "task-delete",
			Usage:     "Delete a task",
			ArgsUsage: "TASK_ID",
			Flags:     []cli.Flag{forceFlag()},
			Action:    taskDeleteAction,
		},
	}
}

func taskListCreateAction(c *cli.Context) error {
	cardID, err := arg(c, 0, "CARD_ID")
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

	taskList, err := client.CreateTaskList(ctx, cardID, name, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Created task list: %s (ID: %s)\n", taskList.Name, taskList.ID)
	return nil
}

func taskCreateAction(c *cli.Context) error {
	taskListID, err := arg(c, 0, "TASKLIST_ID")
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

	task, err := client.CreateTask(ctx, taskListID, name, positionFields(c))
	if err != nil {
		return err
	}

	fmt.Printf("Created task: %s (ID: %s)\n", task.Name, task.ID)
	return nil
}

func taskCompleteAction(c *cli.Context) error {
	taskID, err := arg(c, 0, "TASK_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// The toggle patches isCompleted and nothing else.
	task, err := client.UpdateTask(ctx, taskID, planka.Fields{"isCompleted": !c.Bool("undo")})
	if err != nil {
		return err
	}

	status := "complete"
	if c.Bool("undo") {
		status = "incomplete"
	}
	fmt.Printf("Marked task as %s: %s\n", status, task.Name)
	return nil
}

func taskDeleteAction(c *cli.Context) error {
	taskID, err := arg(c, 0, "TASK_ID")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	if !confirmed(c, "Are you sure you want to delete this task?") {
		fmt.Println("Cancelled.")
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := client.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	fmt.Println("Task deleted")
	return nil
}
