package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "designarena",
		Short:        "Design Arena - themed chat rooms with simulated AI personas",
		Version:      version,
		SilenceUsage: true,
		Long: `Design Arena is a terminal chat room mockup. Pick an arena from the hub
and talk to its personas; every message you send gets a canned reply from
one of them after a short delay. Nothing is persisted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Path to a JSON configuration file (created with defaults if missing)")
	flags.Duration("reply-delay", defaultReplyDelayMS*time.Millisecond, "Delay before a persona replies")
	flags.Uint64("seed", 0, "Seed for picking the replying persona (0 = time based)")
	flags.String("log-file", defaultLogFile, "Debug log file (empty disables logging)")
	flags.Bool("no-alt-screen", false, "Render inline instead of using the alternate screen")
	return cmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(path)
	if err := cfg.Load(); err != nil {
		return nil, err
	}

	if flags.Changed("reply-delay") {
		d, err := flags.GetDuration("reply-delay")
		if err != nil {
			return nil, err
		}
		cfg.SetReplyDelay(d)
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-file") {
		if cfg.LogFile, err = flags.GetString("log-file"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-alt-screen") {
		noAlt, err := flags.GetBool("no-alt-screen")
		if err != nil {
			return nil, err
		}
		cfg.AltScreen = !noAlt
	}
	cfg.Validate()
	return cfg, nil
}

func run(cfg *Config) error {
	logger, closer, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()

	logger.Info("starting", "version", version, "reply_delay", cfg.ReplyDelay(), "seed", cfg.Seed)

	var programOpts []tea.ProgramOption
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(initialModel(cfg, logger), programOpts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	logger.Info("exiting")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}
