package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/tannerklineintz/triedis-cli/internal/cli/config"
	"github.com/tannerklineintz/triedis-cli/internal/cli/connection"
	"github.com/tannerklineintz/triedis-cli/internal/cli/output"
	"github.com/tannerklineintz/triedis-cli/internal/cli/repl"
	"github.com/tannerklineintz/triedis-cli/internal/infra/buildinfo"
	"github.com/tannerklineintz/triedis-cli/internal/infra/shutdown"
	"github.com/tannerklineintz/triedis-cli/internal/telemetry/logger"
)

// App creates the CLI application. There are no subcommands: the
// client either runs one command via --execute or drops into the REPL.
func App() *cli.App {
	return &cli.App{
		Name:            "triedis-cli",
		Usage:           "interactive command-line client for triedis",
		Version:         buildinfo.String(),
		Flags:           globalFlags(),
		Action:          run,
		HideHelpCommand: true,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "server host to connect to",
			EnvVars: []string{"TRIEDIS_HOST"},
			Value:   "127.0.0.1",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "server port to connect to",
			EnvVars: []string{"TRIEDIS_PORT"},
			Value:   6379,
		},
		&cli.StringFlag{
			Name:    "execute",
			Aliases: []string{"e"},
			Usage:   "run a single command and exit",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the YAML config file",
		},
		&cli.StringFlag{
			Name:    "history-file",
			Usage:   "path to the command history file",
			EnvVars: []string{"TRIEDIS_HISTORY_FILE"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "enable debug logging",
		},
	}
}

// run is the single entry point: resolve configuration, connect, then
// either execute one command or start the interactive loop.
func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cfg, c)

	if cfg.Verbose {
		logger.SetLevel("debug")
	}
	log := logger.Default()

	client, err := connection.Dial(cfg.Host, cfg.Port)
	if err != nil {
		return fmt.Errorf("connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	log.Debug("connected", "addr", client.Addr())

	if line := c.String("execute"); line != "" {
		defer client.Close()
		return executeOnce(c, client, line)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(c.App.Writer, "connected to %s\n", client.Addr())
	}

	r := repl.New(client, repl.Config{HistoryFile: cfg.HistoryFile})

	// Cleanup runs exactly once, whether the loop ends by quit, EOF or
	// a delivered signal.
	handler := shutdown.NewHandler()
	handler.OnShutdown(func() { _ = client.Close() })
	handler.OnShutdown(func() { _ = r.History().Save() })
	handler.Watch()

	err = r.Run()
	handler.Trigger()
	return err
}

// applyFlags overrides config fields with explicitly set flags.
// Flags beat file and environment values.
func applyFlags(cfg *config.CLIConfig, c *cli.Context) {
	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("history-file") {
		cfg.HistoryFile = c.String("history-file")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
}

// executeOnce runs a single command line against the server and prints
// the rendered reply, for scripting without a REPL session.
func executeOnce(c *cli.Context, client *connection.Client, line string) error {
	words, err := repl.Tokenize(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	name := strings.ToUpper(words[0])
	v, err := client.Execute(name, words[1:]...)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, output.Format(v, 0))
	return nil
}
