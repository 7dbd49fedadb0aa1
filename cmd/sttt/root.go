package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phanxgames/sttt"
)

// configFlags holds the persistent flags shared by every subcommand.
type configFlags struct {
	path        string
	gamesPerRow int
	gameRows    int
	boardSize   int
	fadeSeconds float32
	debug       bool
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	cf := &configFlags{}
	root := &cobra.Command{
		Use:   "sttt",
		Short: "Super tic-tac-toe board navigation",
		Long: `sttt - an outer grid of tic-tac-toe boards.

Hover a cell to highlight it; click a cell of the active board to move the
active board one step toward that cell's side, wrapping at the edges.`,
		SilenceUsage: true,
	}
	cf.register(root.PersistentFlags())
	root.AddCommand(newPlayCmd(cf), newDumpCmd(cf), newScriptCmd(cf))
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (cf *configFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&cf.path, "config", "c", "", "YAML config file")
	fs.IntVar(&cf.gamesPerRow, "games-per-row", 0, "number of board columns (overrides config)")
	fs.IntVar(&cf.gameRows, "game-rows", 0, "number of board rows (overrides config)")
	fs.IntVarP(&cf.boardSize, "size", "n", 0, "cells per board side (overrides config)")
	fs.Float32Var(&cf.fadeSeconds, "fade", -1, "highlight fade-in seconds (overrides config)")
	fs.BoolVar(&cf.debug, "debug", false, "print transitions to stderr")
}

// load reads the config file, if any, and applies flag overrides.
func (cf *configFlags) load(cmd *cobra.Command) (sttt.Config, error) {
	cfg := sttt.DefaultConfig()
	if cf.path != "" {
		var err error
		if cfg, err = sttt.LoadConfig(cf.path); err != nil {
			return sttt.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("games-per-row") {
		cfg.GamesPerRow = cf.gamesPerRow
	}
	if flags.Changed("game-rows") {
		cfg.GameRows = cf.gameRows
	}
	if flags.Changed("size") {
		cfg.N = cf.boardSize
	}
	if flags.Changed("fade") {
		cfg.FadeSeconds = cf.fadeSeconds
	}
	if cf.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return sttt.Config{}, err
	}
	return cfg, nil
}

func (cf *configFlags) newBoard(cmd *cobra.Command) (sttt.Config, *sttt.Board, error) {
	cfg, err := cf.load(cmd)
	if err != nil {
		return sttt.Config{}, nil, err
	}
	board, err := sttt.NewBoardFromConfig(cfg)
	if err != nil {
		return sttt.Config{}, nil, fmt.Errorf("build board: %w", err)
	}
	return cfg, board, nil
}
