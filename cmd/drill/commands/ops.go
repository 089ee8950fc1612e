package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/internal/casebook"
)

// NewOpsCommand creates the command listing the supported operations.
func NewOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations and their input keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Op", "Input keys"})
			for _, op := range casebook.Ops() {
				tbl.AppendRow(table.Row{op.Name, strings.Join(op.Keys, ", ")})
			}
			tbl.Render()

			return nil
		},
	}
}
