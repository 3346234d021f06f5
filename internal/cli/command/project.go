package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/output"
)

func projectCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "projects",
			Usage:  "List all projects",
			Action: projectsAction,
		},
		{
			Name:      "project-create",
			Usage:     "Create a new project",
			ArgsUsage: "NAME",
			Action:    projectCreateAction,
		},
	}
}

func projectsAction(c *cli.Context) error {
	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	projects, err := client.Projects(ctx)
	if err != nil {
		return err
	}

	table := output.NewTable("ID", "NAME")
	for _, p := range projects {
		table.AddRow(p.ID, p.Name)
	}
	return render(c, projects, table)
}

func projectCreateAction(c *cli.Context) error {
	name, err := arg(c, 0, "NAME")
	if err != nil {
		return err
	}

	client, err := apiClient(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	project, err := client.CreateProject(ctx, name)
	if err != nil {
		return err
	}

	fmt.Printf("Created project: %s (ID: %s)\n", project.Name, project.ID)
	return nil
}
