// Package report renders a casebook run as a table, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patterns/internal/casebook"
	"github.com/katalvlaran/patterns/internal/config"
)

// maxCell bounds the width of the Want/Got columns in table output.
const maxCell = 40

// Render writes rep to w in the given format.
func Render(w io.Writer, rep *casebook.Report, format string) error {
	switch strings.ToLower(format) {
	case config.FormatTable:
		return renderTable(w, rep)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func renderTable(w io.Writer, rep *casebook.Report) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Book", "Case", "Op", "Status", "Want", "Got"})
	for _, r := range rep.Results {
		got := r.Got
		if r.Status == casebook.StatusError {
			got = r.Detail
		}
		tbl.AppendRow(table.Row{r.Book, r.Case, r.Op, statusText(r.Status), clip(r.Want), clip(got)})
	}
	tbl.AppendFooter(table.Row{"", "", "Total", len(rep.Results), "", ""})
	tbl.Render()

	return Summary(w, rep)
}

// Summary writes the one-line pass/fail tally, green when everything passed.
func Summary(w io.Writer, rep *casebook.Report) error {
	c := color.New(color.FgGreen)
	if !rep.OK() {
		c = color.New(color.FgRed)
	}
	_, err := c.Fprintf(w, "%d passed, %d failed, %d errored\n", rep.Passed, rep.Failed, rep.Errored)

	return err
}

func statusText(s casebook.Status) string {
	switch s {
	case casebook.StatusPass:
		return color.GreenString(string(s))
	case casebook.StatusFail:
		return color.RedString(string(s))
	default:
		return color.YellowString(string(s))
	}
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxCell {
		return s
	}

	return strings.TrimSpace(string(r[:maxCell-1])) + "…"
}
