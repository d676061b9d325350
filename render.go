package linebench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
)

// Renderer consumes one sweep and writes a representation of it.
//
// The engine hands every renderer the same inputs: the line (for the two
// model constants r_b and T_0 plus the label) and the ordered row
// sequence. What comes out the other side is unconstrained.
type Renderer interface {
	Render(w io.Writer, line Line, rows []Row) error
}

// Column headers shared by the tabular renderers.
var tableHeaders = []string{
	"WIP",
	"TH Best Case",
	"TH Worst Case",
	"TH Practical Worst Case",
	"CT Best Case",
	"CT Worst Case",
	"CT Practical Worst Case",
}

// CSVRenderer writes the sweep as comma-separated values with a header
// row, suitable for spreadsheets or downstream charting tools.
type CSVRenderer struct{}

// Render writes one header record plus one record per row. Floats use the
// shortest representation that round-trips.
func (CSVRenderer) Render(w io.Writer, _ Line, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tableHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.WIP),
			formatFloat(row.THBest),
			formatFloat(row.THWorst),
			formatFloat(row.THPracticalWorst),
			formatFloat(row.CTBest),
			formatFloat(row.CTWorst),
			formatFloat(row.CTPracticalWorst),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.WIP, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// TableRenderer writes the sweep as an aligned terminal table.
type TableRenderer struct{}

// Render draws a bordered table with right-aligned numeric columns.
func (TableRenderer) Render(w io.Writer, line Line, rows []Row) error {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numStyle := cellStyle.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return cellStyle
			}
			return numStyle
		})

	for _, row := range rows {
		t.Row(
			strconv.Itoa(row.WIP),
			fmt.Sprintf("%.4f", row.THBest),
			fmt.Sprintf("%.4f", row.THWorst),
			fmt.Sprintf("%.4f", row.THPracticalWorst),
			fmt.Sprintf("%.4f", row.CTBest),
			fmt.Sprintf("%.4f", row.CTWorst),
			fmt.Sprintf("%.4f", row.CTPracticalWorst),
		)
	}

	if name := line.Name(); name != "" {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

// ChartRenderer draws the three throughput curves as an ASCII chart:
// best case on top, worst case flat at 1/T_0, practical worst case in
// between. The reference levels r_b and 1/T_0 go into the caption.
type ChartRenderer struct {
	// Chart height in terminal rows; 0 means a sensible default
	Height int
}

// Render plots TH(w) per regime over the sweep's WIP axis.
func (c ChartRenderer) Render(w io.Writer, line Line, rows []Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("nothing to chart, empty sweep: %w", ErrInvalidParameter)
	}

	height := c.Height
	if height <= 0 {
		height = 15
	}

	series := make([][]float64, 3)
	for i := range series {
		series[i] = make([]float64, len(rows))
	}
	for i, row := range rows {
		series[0][i] = row.THBest
		series[1][i] = row.THPracticalWorst
		series[2][i] = row.THWorst
	}

	name := line.Name()
	if name == "" {
		name = "production line"
	}
	caption := fmt.Sprintf("Throughput vs WIP for %s (r_b=%g, 1/T_0=%g)",
		name, line.BottleneckRate(), line.ThroughputWorst())

	chart := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow, asciigraph.Red),
		asciigraph.SeriesLegends("best case", "practical worst case", "worst case"),
	)

	_, err := fmt.Fprintln(w, chart)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
