package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/hauxir/planka-cli/internal/cli/config"
	"github.com/hauxir/planka-cli/internal/cli/output"
	"github.com/hauxir/planka-cli/internal/planka"
	"github.com/hauxir/planka-cli/internal/telemetry/logger"
)

// authCommands returns login, logout and the config commands.
func authCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in and save credentials",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "url",
					Aliases: []string{"s"},
					Usage:   "Planka server URL (e.g. https://planka.example.com)",
				},
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"u"},
					Usage:   "Email or username",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password",
				},
			},
			Action: loginAction,
		},
		{
			Name:   "logout",
			Usage:  "Clear saved credentials",
			Action: logoutAction,
		},
		{
			Name:   "config-show",
			Usage:  "Show current configuration",
			Action: configShowAction,
		},
		{
			Name:      "config-set-url",
			Usage:     "Set the Planka server URL",
			ArgsUsage: "URL",
			Action:    configSetURLAction,
		},
	}
}

func loginAction(c *cli.Context) error {
	path := configPath(c)

	// Writers work on the file values only so an env override is never
	// persisted by accident.
	stored, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	url := c.String("url")
	if url == "" {
		url = promptLine("Planka URL", stored.URL)
	}
	if url == "" {
		return &ValidationError{Msg: "server URL required"}
	}

	username := c.String("username")
	if username == "" {
		username = promptLine("Username/Email", "")
	}
	if username == "" {
		return &ValidationError{Msg: "username required"}
	}

	password := c.String("password")
	if password == "" {
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return &ValidationError{Msg: "password required"}
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	client := planka.New(url, "")
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	stored.URL = url
	stored.Token = token
	if err := config.Save(stored, path); err != nil {
		return err
	}

	fmt.Println("Login successful!")
	fmt.Printf("Config saved to %s\n", displayConfigPath(path))
	return nil
}

func logoutAction(c *cli.Context) error {
	client, err := apiClient(c)
	if err != nil {
		return err
	}

	// Best effort: revoke the token server-side, then clear it locally
	// either way. The stored URL is kept so the next login is cheap.
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := client.Logout(ctx); err != nil {
		logger.Warn("could not revoke token on server", "err", err.Error())
	}

	if err := config.Clear(configPath(c)); err != nil {
		return err
	}

	fmt.Println("Logged out - credentials cleared")
	return nil
}

func configShowAction(c *cli.Context) error {
	path := configPath(c)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if format := outputFormat(c); format != output.FormatTable && format != "" {
		return formatData(format, map[string]string{
			"configFile": displayConfigPath(path),
			"url":        cfg.URL,
			"token":      logger.Mask(cfg.Token),
		})
	}

	return output.FieldBlock(os.Stdout,
		"Config file", displayConfigPath(path),
		"URL", cfg.URL,
		"Token", logger.Mask(cfg.Token),
	)
}

func configSetURLAction(c *cli.Context) error {
	url, err := arg(c, 0, "URL")
	if err != nil {
		return err
	}

	path := configPath(c)
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	cfg.URL = url
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Printf("URL set to: %s\n", url)
	return nil
}

// displayConfigPath resolves the path shown to the user.
func displayConfigPath(path string) string {
	if path != "" {
		return path
	}
	return config.DefaultPath()
}

// promptLine reads one line from stdin, offering a default value.
func promptLine(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// promptPassword reads a password without echoing when stdin is a
// terminal, and falls back to a plain line otherwise (pipes, tests).
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(label, ""), nil
	}

	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
