package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/assemble"
	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/element"
	"github.com/alexiusacademia/gorcd/internal/schedule"
	"github.com/spf13/cobra"
)

var (
	cantLength   float64
	cantBackspan float64
	cantWidth    float64
	cantDepth    float64
	cantCover    float64

	cantTopBars     int
	cantTopDia      float64
	cantBottomBars  int
	cantBottomDia   float64
	cantLinkDia     float64
	cantLinkSpacing float64

	cantCode         string
	cantShowDiagram  bool
	cantExportFile   string
	cantSchedulePDF  string
	cantScheduleXLSX string
)

var cantileverDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Detail reinforcement for a cantilever",
	Long: `Compute the bar layout and backspan extensions for a cantilever.

Top (tension) steel extends into the backspan: the long fraction gets
min(1.5 x L, backspan), the remainder at least 0.75 x L. A backspan too
short to satisfy the 0.75 x L floor is rejected as a policy violation.

Examples:
  # A 2.5 m cantilever with a 3.0 m backspan, 4 T16 top bars
  gorcd cantilever detail --length 2.5 --backspan 3.0 \
      --width 0.3 --depth 0.5 --top-bars 4 --top-dia 0.016`,
	Run: runCantileverDetail,
}

func init() {
	cantileverCmd.AddCommand(cantileverDetailCmd)

	cantileverDetailCmd.Flags().Float64VarP(&cantLength, "length", "l", 0, "Cantilever projection (m) [required]")
	cantileverDetailCmd.Flags().Float64Var(&cantBackspan, "backspan", 0, "Anchoring backspan (m) [required]")
	cantileverDetailCmd.Flags().Float64VarP(&cantWidth, "width", "b", 0, "Section width (m) [required]")
	cantileverDetailCmd.Flags().Float64VarP(&cantDepth, "depth", "d", 0, "Section total depth (m) [required]")
	cantileverDetailCmd.Flags().Float64VarP(&cantCover, "cover", "c", 0, "Concrete cover (m), default 0.030")

	cantileverDetailCmd.Flags().IntVar(&cantTopBars, "top-bars", 0, "Top tension bar count")
	cantileverDetailCmd.Flags().Float64Var(&cantTopDia, "top-dia", 0, "Top bar diameter (m), default 0.012")
	cantileverDetailCmd.Flags().IntVar(&cantBottomBars, "bottom-bars", 0, "Nominal bottom bar count")
	cantileverDetailCmd.Flags().Float64Var(&cantBottomDia, "bottom-dia", 0, "Bottom bar diameter (m), default 0.016")
	cantileverDetailCmd.Flags().Float64Var(&cantLinkDia, "link-dia", 0, "Link diameter (m), default 0.010")
	cantileverDetailCmd.Flags().Float64Var(&cantLinkSpacing, "link-spacing", 0, "Link spacing (m), default 0.150")

	cantileverDetailCmd.Flags().StringVar(&cantCode, "code", "BS8110", "Detailing code family (BS8110, EC2)")
	cantileverDetailCmd.Flags().BoolVar(&cantShowDiagram, "diagram", false, "Show ASCII section view")
	cantileverDetailCmd.Flags().StringVarP(&cantExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	cantileverDetailCmd.Flags().StringVar(&cantSchedulePDF, "schedule-pdf", "", "Write bar bending schedule PDF")
	cantileverDetailCmd.Flags().StringVar(&cantScheduleXLSX, "schedule-xlsx", "", "Write bar bending schedule spreadsheet")

	cantileverDetailCmd.MarkFlagRequired("length")
	cantileverDetailCmd.MarkFlagRequired("backspan")
	cantileverDetailCmd.MarkFlagRequired("width")
	cantileverDetailCmd.MarkFlagRequired("depth")
}

func runCantileverDetail(cmd *cobra.Command, args []string) {
	pol, ok := code.ByName(cantCode)
	if !ok {
		fmt.Printf("Error: unknown detailing code %q\n", cantCode)
		return
	}

	params, err := element.Resolve(element.Cantilever, element.Parameters{
		CantileverLength: cantLength,
		Backspan:         cantBackspan,
		Width:            cantWidth,
		Depth:            cantDepth,
		Cover:            cantCover,
		TopCount:         cantTopBars,
		TopDia:           cantTopDia,
		BottomCount:      cantBottomBars,
		BottomDia:        cantBottomDia,
		LinkDia:          cantLinkDia,
		LinkSpacing:      cantLinkSpacing,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := assemble.Assemble(params, pol)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CANTILEVER REINFORCEMENT DETAILING - %s\n", pol.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Projection: %.3f m   Backspan: %.3f m   Section: %.0f x %.0f mm\n",
		params.CantileverLength, params.Backspan, params.Width*1000, params.Depth*1000)
	fmt.Println()

	printBarGroups(result)
	printPlacements(result)
	printPrimitives(result.Primitives)

	fmt.Print(diagram.DrawSummaryBox("TOTALS", []string{
		fmt.Sprintf("Steel length: %.3f m", result.TotalSteelLength()),
		fmt.Sprintf("Primitives:   %d", len(result.Primitives)),
	}))
	fmt.Println()

	if cantShowDiagram {
		fmt.Println(diagram.DrawASCIISection(sectionView(result)))
	}
	if cantExportFile != "" {
		if err := diagram.ExportSection(sectionView(result), cantExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", cantExportFile)
		}
	}

	rows := schedule.FromResult("C1", result)
	writeScheduleOutputs(rows, "Cantilever Bar Bending Schedule", cantSchedulePDF, cantScheduleXLSX)
}
