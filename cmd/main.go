package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/enemy-behavior/config"
	"github.com/angeloszaimis/enemy-behavior/internal/behavior"
	"github.com/angeloszaimis/enemy-behavior/internal/scenario"
	"github.com/angeloszaimis/enemy-behavior/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enemies",
		Short: "Enemies that switch behavior strategies at runtime",
		Long: `enemies runs a short encounter: each enemy acts on its starting behavior,
every enemy is handed a new behavior, and each acts again.

The cast can be changed in config.yaml; without one the goblin, golem and elf
line-up is used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("err", err))
				return err
			}

			log := logger.New(cfg.Logging.Level, cfg.Logging.AddSource, cfg.Environment, cmd.ErrOrStderr())

			return run(log, cfg, cmd.OutOrStdout())
		},
	}
}

func run(log *slog.Logger, cfg *config.Config, out io.Writer) error {
	s, err := scenario.New(log, out, buildCast(cfg.Cast))
	if err != nil {
		log.Error("Failed to build scenario", slog.Any("err", err))
		return err
	}

	if err := s.Run(); err != nil {
		log.Error("Scenario failed", slog.Any("err", err))
		return err
	}

	return nil
}

func buildCast(actors []config.ActorConfig) []scenario.Casting {
	cast := make([]scenario.Casting, 0, len(actors))

	for _, a := range actors {
		cast = append(cast, scenario.Casting{
			Name:    a.Name,
			Initial: behavior.Kind(a.Initial),
			Next:    behavior.Kind(a.Next),
		})
	}

	return cast
}
