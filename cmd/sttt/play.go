package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sttt"
	"github.com/phanxgames/sttt/view"
)

func newPlayCmd(cf *configFlags) *cobra.Command {
	var (
		script  string
		showFPS bool
		shotDir string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window with the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, board, err := cf.newBoard(cmd)
			if err != nil {
				return err
			}
			if script != "" {
				runner, err := loadScript(script)
				if err != nil {
					return err
				}
				board.SetTestRunner(runner)
			}
			return view.Run(board, cfg.Extent(), view.RunConfig{
				Title:         "Super Tic-Tac-Toe",
				ShowFPS:       showFPS,
				ScreenshotDir: shotDir,
				ClearColor:    cfg.ClearColor,
			})
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "JSON input script to replay")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and board state")
	cmd.Flags().StringVar(&shotDir, "screenshot-dir", "screenshots", "directory for F12 screenshots")
	return cmd
}

func loadScript(path string) (*sttt.TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return sttt.LoadTestScript(data)
}
