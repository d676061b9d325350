package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shopfloorlab/linebench"
)

// lineFlags holds the inputs every subcommand needs: either the raw line
// parameters or a scenario file carrying them.
type lineFlags struct {
	bottleneckRate float64
	processTime    float64
	name           string
	maxWIP         int
	scenario       string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linebench",
		Short: "Closed-form production-line performance curves",
		Long: `linebench computes cycle time and throughput over a WIP range for an
idealized production line, under the best-case, worst-case, and
practical-worst-case regimes of Factory Physics.

The line is described by two numbers: the bottleneck rate r_b (parts per
unit time) and the natural process time T_0 (unit time). Everything else
is derived.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSweepCmd(), newChartCmd())
	return root
}

func addLineFlags(cmd *cobra.Command, f *lineFlags) {
	cmd.Flags().Float64Var(&f.bottleneckRate, "bottleneck-rate", 0, "bottleneck rate r_b in parts per unit time")
	cmd.Flags().Float64Var(&f.processTime, "process-time", 0, "natural process time T_0 in unit time")
	cmd.Flags().StringVar(&f.name, "name", "", "line label used in output")
	cmd.Flags().IntVar(&f.maxWIP, "max-wip", 20, "highest WIP level to evaluate")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "YAML scenario file (overrides the other flags)")
}

// resolve turns the flags into a Line and a sweep range, preferring the
// scenario file when one is given.
func (f lineFlags) resolve() (linebench.Line, int, error) {
	if f.scenario != "" {
		sc, err := loadScenario(f.scenario)
		if err != nil {
			return linebench.Line{}, 0, err
		}
		return sc.line()
	}

	line, err := linebench.NewLine(f.bottleneckRate, f.processTime, f.name)
	if err != nil {
		return linebench.Line{}, 0, err
	}
	if f.maxWIP < 1 {
		return linebench.Line{}, 0, fmt.Errorf("--max-wip must be at least 1, got %d", f.maxWIP)
	}
	return line, f.maxWIP, nil
}

func newSweepCmd() *cobra.Command {
	var (
		flags  lineFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate cycle time and throughput over a WIP range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, maxWIP, err := flags.resolve()
			if err != nil {
				return err
			}

			rows, err := linebench.Sweep(line, maxWIP)
			if err != nil {
				return err
			}

			var renderer linebench.Renderer
			switch format {
			case "csv":
				renderer = linebench.CSVRenderer{}
			case "table":
				renderer = linebench.TableRenderer{}
			default:
				return fmt.Errorf("unknown format %q (want csv or table)", format)
			}

			slog.Info("sweep complete",
				"line", line.Name(),
				"critical_wip", line.CriticalWIP(),
				"rows", len(rows))

			return renderer.Render(cmd.OutOrStdout(), line, rows)
		},
	}

	addLineFlags(cmd, &flags)
	cmd.Flags().StringVar(&format, "format", "table", "output format: csv or table")
	return cmd
}

func newChartCmd() *cobra.Command {
	var (
		flags  lineFlags
		height int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot the three throughput curves as an ASCII chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, maxWIP, err := flags.resolve()
			if err != nil {
				return err
			}

			rows, err := linebench.Sweep(line, maxWIP)
			if err != nil {
				return err
			}

			return linebench.ChartRenderer{Height: height}.Render(cmd.OutOrStdout(), line, rows)
		},
	}

	addLineFlags(cmd, &flags)
	cmd.Flags().IntVar(&height, "height", 15, "chart height in terminal rows")
	return cmd
}
