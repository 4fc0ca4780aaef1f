package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/spantree/core"
)

// ErrUnknownFormat indicates an unsupported table format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Formats lists the values accepted by Table.
var Formats = []string{"table", "md", "csv", "tsv", "html", "simple"}

// Table writes the forest as one row per edge with a total-weight footer.
func Table(w io.Writer, forest []*core.Edge, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "From", "To", "Weight"})
	var total float64
	for i, e := range forest {
		u, v := e.Endpoints()
		t.AppendRow(table.Row{i + 1, u.String(), v.String(), fmt.Sprintf("%.2f", e.Weight)})
		total += e.Weight
	}
	t.AppendFooter(table.Row{"", "", "Total", fmt.Sprintf("%.2f", total)})

	return Emit(t, format)
}

// Emit renders a prepared go-pretty table in one of Formats.
func Emit(t table.Writer, format string) error {
	if !slices.Contains(Formats, format) {
		return errors.Wrapf(ErrUnknownFormat, "%q, want one of %v", format, Formats)
	}

	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateFooter = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}

	return nil
}
