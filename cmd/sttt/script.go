package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sttt"
	"github.com/phanxgames/sttt/termview"
)

// maxScriptTicks bounds a headless run in case a script never finishes.
const maxScriptTicks = 100000

func newScriptCmd(cf *configFlags) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "script <file.json>",
		Short: "Run a JSON input script headlessly and print its transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, board, err := cf.newBoard(cmd)
			if err != nil {
				return err
			}
			runner, err := loadScript(args[0])
			if err != nil {
				return err
			}
			board.SetTestRunner(runner)
			out := cmd.OutOrStdout()
			if !quiet {
				board.OnAnyTransition(func(t sttt.Transition) {
					fmt.Fprintf(out, "%6d  %s\n", board.Tick(), t)
				})
			}
			if err := runScript(board, runner); err != nil {
				return err
			}
			printSummary(out, board)
			return runner.Err()
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the final board")
	return cmd
}

func runScript(board *sttt.Board, runner *sttt.TestRunner) error {
	x, y := board.Pointer()
	for i := 0; i < maxScriptTicks && !runner.Done(); i++ {
		board.Update(sttt.Input{X: x, Y: y, DT: 1.0 / 60})
		x, y = board.Pointer()
	}
	if !runner.Done() {
		return fmt.Errorf("script did not finish within %d ticks", maxScriptTicks)
	}
	return nil
}

func printSummary(w io.Writer, board *sttt.Board) {
	fmt.Fprintf(w, "ticks: %d  active: %d\n", board.Tick(), board.Active())
	fmt.Fprintln(w, termview.Render(board, termview.DefaultStyles()))
}
