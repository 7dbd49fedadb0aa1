package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sttt/termview"
)

func newDumpCmd(cf *configFlags) *cobra.Command {
	var active int
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the board grid with the active board highlighted",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, board, err := cf.newBoard(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("active") {
				if err := board.SetActive(uint64(active)); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), termview.Render(board, termview.DefaultStyles()))
			return nil
		},
	}
	cmd.Flags().IntVar(&active, "active", 0, "board id to mark active instead of the midpoint")
	return cmd
}
