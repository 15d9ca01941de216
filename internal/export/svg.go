package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bouncelab/internal/world"
)

var palette = []string{
	"#4fc3f7", "#ff8a65", "#aed581", "#ba68c8",
	"#ffd54f", "#4db6ac", "#f06292", "#90a4ae",
}

func colorFor(id int) string {
	return palette[id%len(palette)]
}

// SnapshotToSVG renders one frame as SVG: the viewport rectangle with a
// filled circle per body, and a crosshair where the pointer sits.
func SnapshotToSVG(snap world.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, snap.Width, snap.Height, snap.Width, snap.Height))

	for _, v := range snap.Bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, v.X, v.Y, v.R, colorFor(v.ID)))
	}

	if snap.HasPointer {
		sb.WriteString(fmt.Sprintf(`<g stroke="#ffffff" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, snap.PointerX-6, snap.PointerY, snap.PointerX+6, snap.PointerY,
			snap.PointerX, snap.PointerY-6, snap.PointerX, snap.PointerY+6))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrailsToSVG draws the path every body traced over a recorded run, one
// polyline per body, with the final frame's circles on top.
func TrailsToSVG(snapshots []world.Snapshot) string {
	if len(snapshots) == 0 {
		return ""
	}

	last := snapshots[len(snapshots)-1]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, last.Width, last.Height, last.Width, last.Height))

	for bi := range last.Bodies {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.5" d="M`,
			colorFor(last.Bodies[bi].ID)))
		for si, snap := range snapshots {
			if bi >= len(snap.Bodies) {
				break
			}
			v := snap.Bodies[bi]
			if si == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", v.X, v.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", v.X, v.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, v := range last.Bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, v.X, v.Y, v.R, colorFor(v.ID)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
