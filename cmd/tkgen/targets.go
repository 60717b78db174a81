package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-tkgen/pkg/compose"
	"github.com/goliatone/go-tkgen/pkg/targets"
)

func newTargetsCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List registered languages, toolkits and supported pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := targets.NewRegistry(compose.WithRegistryLogger(a.logger))
			var rows [][]string
			for _, pair := range targets.Matrix(reg) {
				if !pair.Supported && !all {
					continue
				}
				rows = append(rows, []string{
					pair.String(),
					pair.Language,
					pair.Toolkit,
					defaultMark(pair.Target),
					supportedMark(pair.Supported),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"TARGET", "LANGUAGE", "TOOLKIT", "DEFAULT", "SUPPORTED"}, rows)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include unsupported pairs")
	return cmd
}

func defaultMark(t targets.Target) string {
	if targets.DefaultToolkits[t.Language] == t.Toolkit {
		return "yes"
	}
	return ""
}

func supportedMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// writeTable pads columns by display width.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, row := range append([][]string{header}, rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}
