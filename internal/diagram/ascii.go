package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/section"
)

// segments used to approximate each root fillet arc
const filletSegments = 8

// Point represents a 2D coordinate of the section outline
type Point struct {
	X float64
	Y float64
}

// SectionDiagramData holds data for drawing an I-section with its neutral axes
type SectionDiagramData struct {
	Title string

	// Section dimensions (mm)
	Dims   section.Dimensions
	Width  float64 // Widest part
	Height float64 // Total depth

	// Outline, counter-clockwise from the bottom-left corner
	Vertices []Point

	// Neutral axes, from the bottom fiber (mm)
	ElasticNA   float64
	PlasticNA   float64
	PNALocation section.PNALocation
}

// NewSectionDiagramData prepares the drawing data for a cross-section
func NewSectionDiagramData(title string, cs *section.CrossSection) SectionDiagramData {
	d := cs.Dimensions()
	p := cs.Properties()

	return SectionDiagramData{
		Title:       title,
		Dims:        d,
		Width:       max(d.BfTop, d.BfBot, d.Tw),
		Height:      p.H,
		Vertices:    Outline(d),
		ElasticNA:   p.ENAyy,
		PlasticNA:   p.PNAyy,
		PNALocation: p.PNALocation,
	}
}

// Outline traces the section boundary with the root fillets approximated by chords
func Outline(d section.Dimensions) []Point {
	h := d.Dw + 2*d.R + d.TfTop + d.TfBot
	cx := 0.5 * max(d.BfTop, d.BfBot, d.Tw)
	tw2 := 0.5 * d.Tw

	pts := []Point{
		{cx - 0.5*d.BfBot, 0},
		{cx + 0.5*d.BfBot, 0},
		{cx + 0.5*d.BfBot, d.TfBot},
	}
	pts = append(pts, fillet(Point{cx + tw2 + d.R, d.TfBot + d.R}, d.R, -0.5*math.Pi)...)
	pts = append(pts, fillet(Point{cx + tw2 + d.R, h - d.TfTop - d.R}, d.R, math.Pi)...)
	pts = append(pts,
		Point{cx + 0.5*d.BfTop, h - d.TfTop},
		Point{cx + 0.5*d.BfTop, h},
		Point{cx - 0.5*d.BfTop, h},
		Point{cx - 0.5*d.BfTop, h - d.TfTop},
	)
	pts = append(pts, fillet(Point{cx - tw2 - d.R, h - d.TfTop - d.R}, d.R, 0.5*math.Pi)...)
	pts = append(pts, fillet(Point{cx - tw2 - d.R, d.TfBot + d.R}, d.R, 0)...)
	pts = append(pts, Point{cx - 0.5*d.BfBot, d.TfBot})

	return pts
}

// fillet returns a quarter arc of radius r about c, turning clockwise by 90°
// from angle start. A zero radius collapses to the corner point.
func fillet(c Point, r, start float64) []Point {
	if r == 0 {
		return []Point{c}
	}
	pts := make([]Point, 0, filletSegments+1)
	for k := 0; k <= filletSegments; k++ {
		theta := start - float64(k)*0.5*math.Pi/filletSegments
		pts = append(pts, Point{c.X + r*math.Cos(theta), c.Y + r*math.Sin(theta)})
	}
	return pts
}

// widthAtY returns the solid width of the section at height y, fillets ignored
func (data SectionDiagramData) widthAtY(y float64) float64 {
	switch {
	case y >= data.Height-data.Dims.TfTop:
		return data.Dims.BfTop
	case y <= data.Dims.TfBot:
		return data.Dims.BfBot
	default:
		return data.Dims.Tw
	}
}

// DrawASCIISectionDiagram creates an ASCII sketch of the section with both neutral axes
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	row := func(y float64) int {
		i := int((1 - y/data.Height) * float64(heightChars))
		return min(max(i, 0), heightChars-1)
	}
	eRow := row(data.ElasticNA)
	pRow := row(data.PlasticNA)

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	}
	sb.WriteString("  CROSS-SECTION\n")
	sb.WriteString("  ─────────────\n")

	for i := 0; i < heightChars; i++ {
		y := data.Height * (1 - (float64(i)+0.5)/float64(heightChars))
		n := int(math.Round(data.widthAtY(y) / data.Width * float64(widthChars)))
		n = max(n, 1)
		pad := (widthChars - n) / 2

		line := strings.Repeat(" ", pad) + strings.Repeat("█", n) + strings.Repeat(" ", widthChars-pad-n)
		sb.WriteString(fmt.Sprintf("  │%s│", line))

		switch {
		case i == eRow && i == pRow:
			sb.WriteString(" ◄─ e.N.A. = p.N.A.")
		case i == eRow:
			sb.WriteString(" ◄─ e.N.A.")
		case i == pRow:
			sb.WriteString(" ◄─ p.N.A.")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  e.N.A. = Elastic neutral axis at %.1f mm from bottom\n", data.ElasticNA))
	sb.WriteString(fmt.Sprintf("  p.N.A. = Plastic neutral axis at %.1f mm from bottom (%s)\n", data.PlasticNA, data.PNALocation))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
