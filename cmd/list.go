package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/format"
)

var listFriends bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the simulations in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFriends {
			writeFriends(cmd.OutOrStdout(), catalog.Default().Friends())
			return nil
		}
		writeSimulations(cmd.OutOrStdout(), catalog.Default().Simulations())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listFriends, "friends", false, "List friends instead of simulations")
	rootCmd.AddCommand(listCmd)
}

// writeTable prints rows in columns sized by display width so CJK and
// accented names stay aligned.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				parts[i] = cell
				continue
			}
			parts[i] = format.PadRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}

	line(header)
	for _, row := range rows {
		line(row)
	}
}

func writeSimulations(w io.Writer, sims []catalog.Simulation) {
	rows := make([][]string, 0, len(sims))
	for _, s := range sims {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			s.AnalysisType,
			s.RunStatus,
			humanize.Comma(int64(s.Nodes)),
			s.Owner,
		})
	}
	writeTable(w, []string{"ID", "NAME", "TYPE", "STATUS", "NODES", "OWNER"}, rows)
}

func writeFriends(w io.Writer, friends []catalog.Friend) {
	rows := make([][]string, 0, len(friends))
	for _, f := range friends {
		rows = append(rows, []string{
			format.Initials(f.Name),
			f.Name,
			f.Status,
			f.Email,
		})
	}
	writeTable(w, []string{"", "NAME", "STATUS", "EMAIL"}, rows)
}
