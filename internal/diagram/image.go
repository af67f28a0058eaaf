package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportStrainDiagram exports the strain distribution over the section
// depth to an image file (png, svg or pdf by extension).
func ExportStrainDiagram(data DistributionData, filename string) error {
	p := plot.New()
	p.Title.Text = diagramTitle("Strain Distribution", data.Name)
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Position (mm)"

	// position increases downward
	p.Y.Min = data.Bottom
	p.Y.Max = data.Top

	points := make(plotter.XYs, len(data.Points))
	for i, pt := range data.Points {
		points[i] = plotter.XY{X: pt.Strain, Y: pt.Position}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	if err := addReferenceLines(p, data); err != nil {
		return err
	}
	return save(p, filename, 6*vg.Inch, 8*vg.Inch)
}

// ExportStressDiagram exports the stress distribution over the section
// depth to an image file.
func ExportStressDiagram(data DistributionData, filename string) error {
	p := plot.New()
	p.Title.Text = diagramTitle("Stress Distribution", data.Name)
	p.X.Label.Text = "Stress (N/mm²)"
	p.Y.Label.Text = "Position (mm)"

	p.Y.Min = data.Bottom
	p.Y.Max = data.Top

	points := make(plotter.XYs, len(data.Points))
	for i, pt := range data.Points {
		points[i] = plotter.XY{X: pt.Stress, Y: pt.Position}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	if err := addReferenceLines(p, data); err != nil {
		return err
	}
	return save(p, filename, 6*vg.Inch, 8*vg.Inch)
}

func diagramTitle(base, name string) string {
	if name == "" {
		return base
	}
	return base + " - " + name
}

// addReferenceLines draws the zero axis and, for curvature profiles, the
// neutral axis marker.
func addReferenceLines(p *plot.Plot, data DistributionData) error {
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.Top},
		{X: 0, Y: data.Bottom},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	if data.Curvature != 0 && data.NeutralAxis >= data.Top && data.NeutralAxis <= data.Bottom {
		naLine, err := plotter.NewLine(plotter.XYs{
			{X: p.X.Min, Y: data.NeutralAxis},
			{X: p.X.Max, Y: data.NeutralAxis},
		})
		if err != nil {
			return err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)
	}
	return nil
}

func save(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
