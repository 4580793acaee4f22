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
	wallHeight      float64
	wallThickness   float64
	wallLength      float64
	wallBaseDepth   float64
	wallBaseWidth   float64
	wallCover       float64
	wallCoverBuried float64

	wallVerticalBars   int
	wallVerticalDia    float64
	wallHorizontalBars int
	wallHorizontalDia  float64
	wallBendFactor     float64

	wallCode         string
	wallSchedulePDF  string
	wallScheduleXLSX string
)

var wallDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Detail reinforcement for a retaining-wall panel",
	Long: `Compute the bar layout and base anchorage for a retaining-wall
panel. Vertical bars run continuous through the stem height and anchor
into the base with an L-bend of 4 x diameter radius and a straight
development per the code's anchorage table.

Examples:
  # A 3.0 m stem, 250 mm thick, on a 0.5 x 2.0 m base, 12 T12 verticals
  gorcd wall detail --height 3.0 --thickness 0.25 --panel-length 4.0 \
      --base-depth 0.5 --base-width 2.0 --vertical-bars 12`,
	Run: runWallDetail,
}

func init() {
	wallCmd.AddCommand(wallDetailCmd)

	wallDetailCmd.Flags().Float64Var(&wallHeight, "height", 0, "Stem height above base (m) [required]")
	wallDetailCmd.Flags().Float64Var(&wallThickness, "thickness", 0, "Stem thickness (m) [required]")
	wallDetailCmd.Flags().Float64Var(&wallLength, "panel-length", 0, "Panel length detailed (m) [required]")
	wallDetailCmd.Flags().Float64Var(&wallBaseDepth, "base-depth", 0, "Base depth (m) [required]")
	wallDetailCmd.Flags().Float64Var(&wallBaseWidth, "base-width", 0, "Base width (m) [required]")
	wallDetailCmd.Flags().Float64VarP(&wallCover, "cover", "c", 0, "Exposed-face cover (m), default 0.030")
	wallDetailCmd.Flags().Float64Var(&wallCoverBuried, "cover-buried", 0, "Earth-face cover (m), default 0.050")

	wallDetailCmd.Flags().IntVar(&wallVerticalBars, "vertical-bars", 0, "Vertical bar count in the panel")
	wallDetailCmd.Flags().Float64Var(&wallVerticalDia, "vertical-dia", 0, "Vertical bar diameter (m), default 0.012")
	wallDetailCmd.Flags().IntVar(&wallHorizontalBars, "horizontal-bars", 0, "Horizontal bar count over the height")
	wallDetailCmd.Flags().Float64Var(&wallHorizontalDia, "horizontal-dia", 0, "Horizontal bar diameter (m), default 0.012")
	wallDetailCmd.Flags().Float64Var(&wallBendFactor, "bend-radius-factor", 0, "Bend radius in bar diameters, default 4")

	wallDetailCmd.Flags().StringVar(&wallCode, "code", "BS8110", "Detailing code family (BS8110, EC2)")
	wallDetailCmd.Flags().StringVar(&wallSchedulePDF, "schedule-pdf", "", "Write bar bending schedule PDF")
	wallDetailCmd.Flags().StringVar(&wallScheduleXLSX, "schedule-xlsx", "", "Write bar bending schedule spreadsheet")

	wallDetailCmd.MarkFlagRequired("height")
	wallDetailCmd.MarkFlagRequired("thickness")
	wallDetailCmd.MarkFlagRequired("panel-length")
	wallDetailCmd.MarkFlagRequired("base-depth")
	wallDetailCmd.MarkFlagRequired("base-width")
}

func runWallDetail(cmd *cobra.Command, args []string) {
	pol, ok := code.ByName(wallCode)
	if !ok {
		fmt.Printf("Error: unknown detailing code %q\n", wallCode)
		return
	}

	params, err := element.Resolve(element.Wall, element.Parameters{
		WallHeight:       wallHeight,
		WallThickness:    wallThickness,
		WallLength:       wallLength,
		BaseDepth:        wallBaseDepth,
		BaseWidth:        wallBaseWidth,
		Cover:            wallCover,
		CoverBuried:      wallCoverBuried,
		VerticalCount:    wallVerticalBars,
		VerticalDia:      wallVerticalDia,
		HorizontalCount:  wallHorizontalBars,
		HorizontalDia:    wallHorizontalDia,
		BendRadiusFactor: wallBendFactor,
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
	fmt.Printf("     RETAINING WALL REINFORCEMENT DETAILING - %s\n", pol.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Stem: %.3f m high x %.0f mm thick   Panel: %.3f m   Base: %.0f x %.0f mm\n",
		params.WallHeight, params.WallThickness*1000, params.WallLength,
		params.BaseDepth*1000, params.BaseWidth*1000)
	fmt.Println()

	printBarGroups(result)
	printPlacements(result)
	printPrimitives(result.Primitives)

	if vertical := result.Group("vertical"); vertical != nil {
		dev := pol.DevelopmentFactor * vertical.Dia
		radius := params.BendRadiusFactor * vertical.Dia
		fmt.Print(diagram.DrawSummaryBox("BASE ANCHORAGE", []string{
			fmt.Sprintf("Development: %.3f m (%.0f dia)", dev, pol.DevelopmentFactor),
			fmt.Sprintf("Bend radius: %.3f m (%.0f dia)", radius, params.BendRadiusFactor),
			fmt.Sprintf("Bar length:  %.3f m developed", vertical.BarLength),
		}))
		fmt.Println()
	}

	rows := schedule.FromResult("W1", result)
	writeScheduleOutputs(rows, "Retaining Wall Bar Bending Schedule", wallSchedulePDF, wallScheduleXLSX)
}
