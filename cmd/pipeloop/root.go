package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logging"
)

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	cmd := &cobra.Command{
		Use:   "pipeloop",
		Short: "pipeloop traces the pipe loop of a grid and counts the tiles it encloses",
		Long: `pipeloop reads a grid of pipe glyphs (| - L J 7 F), ground (.) and one anchor (S),
follows the closed loop through the anchor and reports how far its furthest point
is and how many tiles lie inside it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	f := cmd.PersistentFlags()
	f.String("config", "pipeloop.yaml", "YAML configuration file; ignored when missing")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.String("log-format", "text", "Log format: text or json")

	cmd.AddCommand(newSolveCmd(a), newRenderCmd(a), newVersionCmd())
	return cmd
}

// setup loads the configuration file, lets explicitly set flags override it
// and builds the logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	a.log.Debug("config loaded", "path", path, "level", cfg.Log.Level, "format", cfg.Log.Format)
	return nil
}

// readInput returns the grid text from the file named by args[0], or from
// stdin when there is no argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read grid: %w", err)
	}
	return string(data), nil
}

// Execute runs the command tree and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
