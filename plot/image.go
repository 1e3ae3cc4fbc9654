package plot

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lixenwraith/projectile/physics"
)

// Image size of the exported graph
const (
	ImageWidth  = 8 * vg.Inch
	ImageHeight = 3 * vg.Inch
)

// ErrEmptyTrajectory is returned when there is nothing to draw
var ErrEmptyTrajectory = errors.New("empty trajectory")

var (
	pathColor  = color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}
	peakColor  = color.RGBA{R: 0xdc, G: 0x35, B: 0x45, A: 0xff}
	rangeColor = color.RGBA{R: 0x28, G: 0xa7, B: 0x45, A: 0xff}
)

// XYs converts a trajectory to plotter points
func XYs(tr physics.Trajectory) plotter.XYs {
	pts := make(plotter.XYs, len(tr))
	for i, p := range tr {
		pts[i].X = p.X
		pts[i].Y = p.Y
	}
	return pts
}

// New builds the trajectory graph: path, peak and range markers with labels
func New(tr physics.Trajectory) (*plot.Plot, error) {
	if len(tr) == 0 {
		return nil, ErrEmptyTrajectory
	}

	p := plot.New()
	p.Title.Text = "Theoretical Trajectory"
	p.X.Label.Text = "distance (m)"
	p.Y.Label.Text = "height (m)"
	p.Y.Min = 0
	p.BackgroundColor = color.RGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}

	line, err := plotter.NewLine(XYs(tr))
	if err != nil {
		return nil, fmt.Errorf("trajectory line: %w", err)
	}
	line.LineStyle.Color = pathColor
	line.LineStyle.Width = vg.Points(2)

	peak, _ := tr.Peak()
	last, _ := tr.Range()

	peakMarker, err := marker(peak.X, peak.Y, peakColor)
	if err != nil {
		return nil, fmt.Errorf("peak marker: %w", err)
	}
	rangeMarker, err := marker(last.X, 0, rangeColor)
	if err != nil {
		return nil, fmt.Errorf("range marker: %w", err)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: peak.X, Y: peak.Y}, {X: last.X, Y: 0}},
		Labels: []string{
			fmt.Sprintf("Peak: %.1fm", peak.Y),
			fmt.Sprintf("Range: %.1fm", last.X),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}

	p.Add(plotter.NewGrid(), line, peakMarker, rangeMarker, labels)
	p.Legend.Add("trajectory", line)
	p.Legend.Add("peak", peakMarker)
	p.Legend.Add("range", rangeMarker)
	p.Legend.Top = true

	return p, nil
}

func marker(x, y float64, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// WriteImage renders the graph in format ("png", "svg", "pdf", ...) to w
func WriteImage(w io.Writer, tr physics.Trajectory, format string) error {
	p, err := New(tr)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(ImageWidth, ImageHeight, format)
	if err != nil {
		return fmt.Errorf("create %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Save renders the graph to path, choosing the format from its extension
func Save(path string, tr physics.Trajectory) error {
	p, err := New(tr)
	if err != nil {
		return err
	}
	if err := p.Save(ImageWidth, ImageHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
