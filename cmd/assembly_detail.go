package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/assemble"
	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/schedule"
	"github.com/spf13/cobra"
)

var (
	assemblyFile         string
	assemblyShowSpans    bool
	assemblySchedulePDF  string
	assemblyScheduleXLSX string
)

var assemblyDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Detail a multi-span assembly from a JSON file",
	Long: `Assemble a chain of beam spans defined in a JSON file.

The file lists spans in chaining order; start offsets are derived by
prefix sum, never authored. Splice-candidate bottom bars receive their
lap at each internal support, and a support stub is placed at every
boundary including the final one.

Example file:
  {
    "name": "Frame line A",
    "code": "BS8110",
    "spans": [
      {"span_m": 6.0, "width_m": 0.3, "depth_m": 0.5, "bottom_count": 3, "top_count": 4},
      {"span_m": 6.0, "width_m": 0.3, "depth_m": 0.5, "bottom_count": 3, "top_count": 4},
      {"span_m": 4.0, "width_m": 0.3, "depth_m": 0.5, "bottom_count": 2, "top_count": 2}
    ]
  }

Examples:
  gorcd assembly detail --file frame.json
  gorcd assembly detail -f frame.json --spans --schedule-pdf frame.pdf`,
	Run: runAssemblyDetail,
}

func init() {
	assemblyCmd.AddCommand(assemblyDetailCmd)

	assemblyDetailCmd.Flags().StringVarP(&assemblyFile, "file", "f", "", "Path to assembly JSON file [required]")
	assemblyDetailCmd.MarkFlagRequired("file")

	assemblyDetailCmd.Flags().BoolVar(&assemblyShowSpans, "spans", false, "Print per-span bar group detail")
	assemblyDetailCmd.Flags().StringVar(&assemblySchedulePDF, "schedule-pdf", "", "Write bar bending schedule PDF")
	assemblyDetailCmd.Flags().StringVar(&assemblyScheduleXLSX, "schedule-xlsx", "", "Write bar bending schedule spreadsheet")
}

func runAssemblyDetail(cmd *cobra.Command, args []string) {
	af, err := element.LoadAssembly(assemblyFile)
	if err != nil {
		fmt.Printf("Error loading assembly: %v\n", err)
		return
	}

	codeName := af.Code
	if codeName == "" {
		codeName = code.Default().Name
	}
	pol, ok := code.ByName(codeName)
	if !ok {
		fmt.Printf("Error: unknown detailing code %q\n", codeName)
		return
	}

	result, err := assemble.AssembleAssembly(af.Spans, pol)
	if err != nil {
		fmt.Printf("Error assembling: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     MULTI-SPAN ASSEMBLY DETAILING - %s\n", pol.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if af.Name != "" {
		fmt.Printf("  Assembly: %s\n", af.Name)
	}
	if af.Description != "" {
		fmt.Printf("  Description: %s\n", af.Description)
	}
	fmt.Println()

	fmt.Println("SPANS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span\tStart X\tLength\tSection\tSteel\n")
	fmt.Fprintf(w, "  ────\t───────\t──────\t───────\t─────\n")
	for i := range result.Spans {
		sp := &result.Spans[i]
		fmt.Fprintf(w, "  %d\t%.3f m\t%.3f m\t%.0f x %.0f mm\t%.3f m\n",
			i+1, sp.StartOffsetX, sp.Params.Span,
			sp.Params.Width*1000, sp.Params.Depth*1000,
			sp.Result.TotalSteelLength())
	}
	w.Flush()
	fmt.Println()

	if assemblyShowSpans {
		for i := range result.Spans {
			fmt.Printf("SPAN %d:\n", i+1)
			printBarGroups(result.Spans[i].Result)
		}
	}

	printPrimitives(result.Primitives)

	fmt.Print(diagram.DrawSummaryBox("ASSEMBLY TOTALS", []string{
		fmt.Sprintf("Spans:        %d", len(result.Spans)),
		fmt.Sprintf("Total length: %.3f m", result.TotalLength),
		fmt.Sprintf("Steel length: %.3f m (laps included)", result.TotalSteelLength()),
		fmt.Sprintf("Primitives:   %d", len(result.Primitives)),
	}))
	fmt.Println()

	rows := schedule.FromAssembly(result)
	title := af.Name
	if title == "" {
		title = "Assembly Bar Bending Schedule"
	}
	writeScheduleOutputs(rows, title, assemblySchedulePDF, assemblyScheduleXLSX)
}
