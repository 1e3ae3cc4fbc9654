package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/projectile/physics"
)

// ASCII charts height over sample index as text, width columns by height rows
// Returns an empty string for an empty trajectory
func ASCII(tr physics.Trajectory, width, height int) string {
	if len(tr) == 0 {
		return ""
	}

	ys := make([]float64, len(tr))
	for i, p := range tr {
		ys[i] = p.Y
	}

	last := tr[len(tr)-1]
	peak, _ := tr.Peak()
	caption := fmt.Sprintf("height (m) over %d samples, peak %.1fm, range %.1fm", len(tr), peak.Y, last.X)

	opts := []asciigraph.Option{asciigraph.Caption(caption), asciigraph.Precision(1)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	return asciigraph.Plot(ys, opts...)
}
