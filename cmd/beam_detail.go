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
	// Geometry inputs (m)
	beamSpan            float64
	beamWidth           float64
	beamDepth           float64
	beamCover           float64
	beamProfile         string
	beamFlangeWidth     float64
	beamFlangeThickness float64

	// Reinforcement inputs
	beamBottomBars  int
	beamBottomDia   float64
	beamTopBars     int
	beamTopDia      float64
	beamHangers     int
	beamHangerDia   float64
	beamLinkDia     float64
	beamLinkSpacing float64

	// Code and outputs
	beamCode         string
	beamShowDiagram  bool
	beamExportFile   string
	beamSchedulePDF  string
	beamScheduleXLSX string
)

var beamDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Detail reinforcement for a beam span",
	Long: `Compute the bar layout, curtailment and render geometry for a
simply supported beam span.

Top support steel follows the 60/40 curtailment rule: the continuous
fraction runs the full span, the remainder is cut to 0.25 x span at each
support. Bottom steel runs the full span; the splice fraction is flagged
for lapping at internal supports of multi-span assemblies.

Examples:
  # A 6.0 m beam, 300x500 section, 3 T20 bottom + 4 T12 top
  gorcd beam detail --span 6.0 --width 0.3 --depth 0.5 \
      --bottom-bars 3 --bottom-dia 0.020 --top-bars 4 --top-dia 0.012

  # With an ASCII section view and a schedule PDF
  gorcd beam detail --span 6.0 --width 0.3 --depth 0.5 \
      --bottom-bars 3 --diagram --schedule-pdf beam.pdf`,
	Run: runBeamDetail,
}

func init() {
	beamCmd.AddCommand(beamDetailCmd)

	// Geometry flags
	beamDetailCmd.Flags().Float64VarP(&beamSpan, "span", "s", 0, "Clear span (m) [required]")
	beamDetailCmd.Flags().Float64VarP(&beamWidth, "width", "b", 0, "Section width (m) [required]")
	beamDetailCmd.Flags().Float64VarP(&beamDepth, "depth", "d", 0, "Section total depth (m) [required]")
	beamDetailCmd.Flags().Float64VarP(&beamCover, "cover", "c", 0, "Concrete cover (m), default 0.030")
	beamDetailCmd.Flags().StringVar(&beamProfile, "profile", "rect", "Section profile: rect, t, l")
	beamDetailCmd.Flags().Float64Var(&beamFlangeWidth, "flange-width", 0, "Flange width (m), T/L profiles")
	beamDetailCmd.Flags().Float64Var(&beamFlangeThickness, "flange-thickness", 0, "Flange thickness (m), T/L profiles")

	// Reinforcement flags
	beamDetailCmd.Flags().IntVar(&beamBottomBars, "bottom-bars", 0, "Bottom bar count")
	beamDetailCmd.Flags().Float64Var(&beamBottomDia, "bottom-dia", 0, "Bottom bar diameter (m), default 0.016")
	beamDetailCmd.Flags().IntVar(&beamTopBars, "top-bars", 0, "Top support bar count")
	beamDetailCmd.Flags().Float64Var(&beamTopDia, "top-dia", 0, "Top bar diameter (m), default 0.012")
	beamDetailCmd.Flags().IntVar(&beamHangers, "hangers", 0, "Hanger bar count (code minimum 2)")
	beamDetailCmd.Flags().Float64Var(&beamHangerDia, "hanger-dia", 0, "Hanger bar diameter (m), default 0.016")
	beamDetailCmd.Flags().Float64Var(&beamLinkDia, "link-dia", 0, "Link diameter (m), default 0.010")
	beamDetailCmd.Flags().Float64Var(&beamLinkSpacing, "link-spacing", 0, "Link spacing (m), default 0.150")

	// Code and output flags
	beamDetailCmd.Flags().StringVar(&beamCode, "code", "BS8110", "Detailing code family (BS8110, EC2)")
	beamDetailCmd.Flags().BoolVar(&beamShowDiagram, "diagram", false, "Show ASCII section view")
	beamDetailCmd.Flags().StringVarP(&beamExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	beamDetailCmd.Flags().StringVar(&beamSchedulePDF, "schedule-pdf", "", "Write bar bending schedule PDF")
	beamDetailCmd.Flags().StringVar(&beamScheduleXLSX, "schedule-xlsx", "", "Write bar bending schedule spreadsheet")

	beamDetailCmd.MarkFlagRequired("span")
	beamDetailCmd.MarkFlagRequired("width")
	beamDetailCmd.MarkFlagRequired("depth")
}

func profileFromFlag(name string) element.Profile {
	switch name {
	case "t":
		return element.ProfileTSection
	case "l":
		return element.ProfileLSection
	default:
		return element.ProfileRectangular
	}
}

func runBeamDetail(cmd *cobra.Command, args []string) {
	pol, ok := code.ByName(beamCode)
	if !ok {
		fmt.Printf("Error: unknown detailing code %q\n", beamCode)
		return
	}

	params, err := element.Resolve(element.Beam, element.Parameters{
		Span:            beamSpan,
		Width:           beamWidth,
		Depth:           beamDepth,
		Cover:           beamCover,
		Profile:         profileFromFlag(beamProfile),
		FlangeWidth:     beamFlangeWidth,
		FlangeThickness: beamFlangeThickness,
		BottomCount:     beamBottomBars,
		BottomDia:       beamBottomDia,
		TopCount:        beamTopBars,
		TopDia:          beamTopDia,
		HangerCount:     beamHangers,
		HangerDia:       beamHangerDia,
		LinkDia:         beamLinkDia,
		LinkSpacing:     beamLinkSpacing,
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
	fmt.Printf("     BEAM REINFORCEMENT DETAILING - %s\n", pol.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Span: %.3f m   Section: %.0f x %.0f mm (%s)   Cover: %.0f mm\n",
		params.Span, params.Width*1000, params.Depth*1000, params.Profile, params.Cover*1000)
	fmt.Println()

	printBarGroups(result)
	printPlacements(result)
	printPrimitives(result.Primitives)

	fmt.Print(diagram.DrawSummaryBox("TOTALS", []string{
		fmt.Sprintf("Steel length: %.3f m", result.TotalSteelLength()),
		fmt.Sprintf("Primitives:   %d", len(result.Primitives)),
	}))
	fmt.Println()

	if beamShowDiagram {
		fmt.Println(diagram.DrawASCIISection(sectionView(result)))
	}
	if beamExportFile != "" {
		if err := diagram.ExportSection(sectionView(result), beamExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", beamExportFile)
		}
	}

	rows := schedule.FromResult("B1", result)
	writeScheduleOutputs(rows, "Beam Bar Bending Schedule", beamSchedulePDF, beamScheduleXLSX)
}
