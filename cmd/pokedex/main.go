package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meur/pokedex/internal/config"
	"github.com/meur/pokedex/internal/logging"
	"github.com/meur/pokedex/internal/storage"
	"github.com/meur/pokedex/internal/ui"
)

// options holds global flags and what is built from them before a command runs
type options struct {
	verbose bool
	logFile string
	theme   string

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the sample Pokédex",
		Long: `Browse a fixed list of sample Pokémon.

Run without arguments to open the interactive screen: type to search by
name or #number, toggle type chips to filter, and flip the sort order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (POKEDEX_LOG_FILE)")
	flags.StringVar(&opts.theme, "theme", "", "Color theme: auto, light or dark (POKEDEX_THEME)")

	root.AddCommand(newListCmd(opts), newTypesCmd())
	return root
}

// setup loads config, applies flag overrides and builds the logger
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(o.theme))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: o.verbose,
		// The interactive screen owns the terminal.
		Quiet: cmd == cmd.Root(),
	})
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	o.logger.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.Theme),
		zap.String("log_file", cfg.LogFile))
	return nil
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	store := storage.New()
	model := ui.New(store, ui.NewStyles(ui.ThemeFor(opts.cfg.Theme)), opts.logger)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	opts.logger.Info("starting ui", zap.Int("items", store.Len()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run ui: %w", err)
	}
	return nil
}
