package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/orbit"
)

var trackColors = []string{"#00ffff", "#ff66cc", "#ffcc00", "#66ff66", "#ff6644", "#aa88ff"}

// TracksToSVG draws recorded trajectories in world coordinates: the planet
// as a filled disc, each track as a polyline ending in a dot. A track that
// collided ends in a red cross.
func TracksToSVG(out io.Writer, bounds orbit.Bounds, planet orbit.Planet, tracks []*experiment.Track) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, bounds.Width, bounds.Height, bounds.Width, bounds.Height))

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#2a5bd7"/>
`, planet.X, planet.Y, planet.Radius))

	for i, tr := range tracks {
		if len(tr.Samples) == 0 {
			continue
		}
		color := trackColors[i%len(trackColors)]

		if len(tr.Samples) > 1 {
			sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1" points="`, color))
			for j, s := range tr.Samples {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", s.X, s.Y))
			}
			sb.WriteString("\"/>\n")
		}

		last := tr.Samples[len(tr.Samples)-1]
		if tr.Fate == orbit.Collided {
			sb.WriteString(fmt.Sprintf(`<path stroke="#ff2222" stroke-width="2" d="M%.1f,%.1f l6,6 m-6,0 l6,-6"/>
`, last.X-3, last.Y-3))
		} else {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, last.X, last.Y, color))
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(out, sb.String())
	return err
}
