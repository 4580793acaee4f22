package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSection exports the section view to an image file (png, svg or
// pdf by extension). Dimensions are plotted in millimeters.
func ExportSection(v SectionView, filename string) error {
	p := plot.New()
	p.Title.Text = "Reinforcement Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Depth (mm)"

	wmm := v.Width * 1000
	dmm := v.Depth * 1000
	cmm := v.Cover * 1000

	// Section outline
	outline := plotter.XYs{
		{X: -wmm / 2, Y: 0},
		{X: wmm / 2, Y: 0},
		{X: wmm / 2, Y: dmm},
		{X: -wmm / 2, Y: dmm},
		{X: -wmm / 2, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Link loop on its centerline
	if v.LinkDia > 0 {
		lw := wmm/2 - cmm - v.LinkDia*1000/2
		linkLoop := plotter.XYs{
			{X: -lw, Y: cmm},
			{X: lw, Y: cmm},
			{X: lw, Y: dmm - cmm},
			{X: -lw, Y: dmm - cmm},
			{X: -lw, Y: cmm},
		}
		linkLine, err := plotter.NewLine(linkLoop)
		if err != nil {
			return err
		}
		linkLine.LineStyle.Width = vg.Points(1)
		linkLine.LineStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
		linkLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(linkLine)
	}

	// Bar layers
	layers := []struct {
		offsets []float64
		dia     float64
		y       float64
		label   string
	}{
		{v.BottomOffsets, v.BottomDia, cmm + v.LinkDia*1000 + v.BottomDia*1000/2, "bottom"},
		{v.TopOffsets, v.TopDia, dmm - cmm - v.LinkDia*1000 - v.TopDia*1000/2, "top"},
		{v.HangerOffsets, v.HangerDia, dmm - cmm - v.LinkDia*1000 - v.HangerDia*1000/2, "hanger"},
	}

	for _, layer := range layers {
		if len(layer.offsets) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(layer.offsets))
		for i, off := range layer.offsets {
			pts[i] = plotter.XY{X: off * 1000, Y: layer.y}
		}
		bars, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		bars.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		bars.GlyphStyle.Radius = vg.Points(5)
		bars.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bars)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: wmm/2 + 20, Y: layer.y}},
			Labels: []string{fmt.Sprintf("%d T%.0f %s", len(layer.offsets), layer.dia*1000, layer.label)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	width := 6 * vg.Inch
	height := 8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
