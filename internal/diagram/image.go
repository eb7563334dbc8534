package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportSectionDiagram exports the section outline and neutral axes to an image file.
// The format follows the extension (png, svg, pdf); anything else is saved as png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Cross-Section"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := make(plotter.XYs, len(data.Vertices))
	for i, v := range data.Vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	steel, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	steel.Color = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	steel.LineStyle.Width = vg.Points(2)
	steel.LineStyle.Color = color.Black
	p.Add(steel)

	axes := []struct {
		y     float64
		col   color.Color
		label string
	}{
		{data.ElasticNA, color.RGBA{R: 255, A: 255}, fmt.Sprintf("e.N.A. %.1f", data.ElasticNA)},
		{data.PlasticNA, color.RGBA{B: 200, A: 255}, fmt.Sprintf("p.N.A. %.1f", data.PlasticNA)},
	}
	for i, ax := range axes {
		line, err := plotter.NewLine(plotter.XYs{
			{X: -20, Y: ax.y},
			{X: data.Width + 20, Y: ax.y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = ax.col
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)

		// Offset the second label when both axes coincide
		labelY := ax.y + float64(i)*0.04*data.Height
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: data.Width + 25, Y: labelY}},
			Labels: []string{ax.label},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Keep the section undistorted
	span := max(data.Width+150, data.Height) * 1.05
	p.X.Min, p.X.Max = -0.5*(span-data.Width-150), -0.5*(span-data.Width-150)+span
	p.Y.Min, p.Y.Max = -0.5*(span-data.Height), -0.5*(span-data.Height)+span

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating directory %s", dir)
		}
	}

	size := 7 * vg.Inch
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}
