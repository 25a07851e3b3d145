package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/replybot/internal/config"
	"github.com/sant0-9/replybot/internal/library"
	"github.com/sant0-9/replybot/internal/logging"
	"github.com/sant0-9/replybot/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

type options struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "replybot",
		Short: "Build, test and save rule-based chatbots",
		Long: `replybot is a chatbot maker for canned replies.

A chatbot answers with the reply of the first trigger phrase found in the
message, ignoring case, or with its default response. Chatbots are stored
as JSON files.

Run without arguments to start the interactive menu.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/replybot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newRespondCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))

	return rootCmd
}

// setup loads config and builds the logger shared by all commands
func (o *options) setup() error {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
		if err == nil && cfg == nil {
			err = fmt.Errorf("config file not found: %s", o.configPath)
		}
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	o.cfg = cfg

	logger, err := logging.New(cfg.Log, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func runShell(opts *options) error {
	lib := library.New(config.ExpandPath(opts.cfg.BotsDir), opts.logger)
	if opts.cfg.Autoload {
		if _, err := lib.Scan(); err != nil {
			opts.logger.Warn("Failed to scan bots directory", zap.Error(err))
		}
	}

	app := tui.NewApp(opts.cfg, lib, opts.logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	opts.logger.Info("Shell started", zap.Int("bots", lib.Count()), zap.String("version", Version))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
