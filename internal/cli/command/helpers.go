package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hauxir/planka-cli/internal/cli/config"
	"github.com/hauxir/planka-cli/internal/cli/output"
	"github.com/hauxir/planka-cli/internal/planka"
)

// requestTimeout bounds the single HTTP call a command makes.
const requestTimeout = 30 * time.Second

// ValidationError is a bad invocation: a missing positional argument or
// a malformed flag value. It is raised before any request is made.
type ValidationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Msg
}

// arg returns the i-th positional argument or a ValidationError naming
// the missing one.
func arg(c *cli.Context, i int, name string) (string, error) {
	v := c.Args().Get(i)
	if v == "" {
		return "", &ValidationError{Msg: "missing required argument: " + name}
	}
	return v, nil
}

// configPath returns the --config override, or empty for the default.
func configPath(c *cli.Context) string {
	return c.String("config")
}

// apiClient loads the effective credentials and builds an authenticated
// client. It fails before any request is made when no token is
// available, so unauthenticated invocations never touch the network.
func apiClient(c *cli.Context) (*planka.Client, error) {
	cfg, err := config.Load(configPath(c))
	if err != nil {
		return nil, err
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("no server URL configured (run 'planka login')")
	}
	if cfg.Token == "" {
		return nil, planka.ErrNotAuthenticated
	}
	return planka.New(cfg.URL, cfg.Token), nil
}

// requestContext derives the per-request context from the process
// context, so an interrupt aborts the call in flight.
func requestContext(c *cli.Context) (context.Context, context.CancelFunc) {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, requestTimeout)
}

// outputFormat returns the requested output format.
func outputFormat(c *cli.Context) output.Format {
	return output.Format(c.String("output"))
}

// render prints data in the requested format: the prepared table for
// table output, the raw data otherwise.
func render(c *cli.Context, data any, table *output.Table) error {
	format := outputFormat(c)
	if format == output.FormatTable || format == "" {
		return table.Render(os.Stdout)
	}
	return formatData(format, data)
}

// formatData prints data with the json or yaml formatter.
func formatData(format output.Format, data any) error {
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	return formatter.Format(os.Stdout, data)
}

// confirmed asks for confirmation before a destructive operation unless
// --force was given.
func confirmed(c *cli.Context, prompt string) bool {
	if c.Bool("force") {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

// forceFlag skips the confirmation prompt of destructive commands.
func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip confirmation",
	}
}

// positionFlag is the optional placement within the parent container.
func positionFlag(usage string) cli.Flag {
	return &cli.Float64Flag{
		Name:    "position",
		Aliases: []string{"p"},
		Usage:   usage,
	}
}

// positionFields returns a payload carrying "position" only when the
// flag was explicitly supplied.
func positionFields(c *cli.Context) planka.Fields {
	fields := planka.Fields{}
	if c.IsSet("position") {
		fields["position"] = c.Float64("position")
	}
	return fields
}
