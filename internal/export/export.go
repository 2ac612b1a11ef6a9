// Package export renders computed stability runs as CSV, JSON, and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/gzlab/internal/stability"
)

// Run is the JSON export shape for one computed curve.
type Run struct {
	ID      string             `json:"id,omitempty"`
	Vessel  string             `json:"vessel"`
	Draft   float64            `json:"draft"`
	KG      float64            `json:"kg"`
	Summary *stability.Summary `json:"summary"`
	Points  []stability.Point  `json:"points"`
}

// WriteCSV writes the curve as angle/gz rows.
func WriteCSV(out io.Writer, curve *stability.Curve) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"angle", "gz"}); err != nil {
		return err
	}
	for _, p := range curve.Points {
		row := []string{
			strconv.FormatFloat(p.AngleDeg, 'f', 1, 64),
			strconv.FormatFloat(p.GZ, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the run with indentation, matching the metadata
// files the store produces.
func WriteJSON(out io.Writer, run Run) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// CurveToSVG renders the GZ curve as an SVG polyline with a zero-GZ
// axis line and a marker on the peak point.
func CurveToSVG(curve *stability.Curve, width, height int, strokeColor string) string {
	if len(curve.Points) < 2 {
		return ""
	}

	minA := curve.Points[0].AngleDeg
	maxA := curve.Points[len(curve.Points)-1].AngleDeg
	minGZ, maxGZ := curve.Points[0].GZ, curve.Points[0].GZ
	peak := curve.Points[0]
	for _, p := range curve.Points {
		if p.GZ < minGZ {
			minGZ = p.GZ
		}
		if p.GZ > maxGZ {
			maxGZ = p.GZ
		}
		if p.GZ > peak.GZ {
			peak = p
		}
	}
	// Keep the zero-GZ line inside the drawing.
	if minGZ > 0 {
		minGZ = 0
	}
	if maxGZ < 0 {
		maxGZ = 0
	}

	rangeA := maxA - minA
	rangeGZ := maxGZ - minGZ
	if rangeA == 0 {
		rangeA = 1
	}
	if rangeGZ == 0 {
		rangeGZ = 1
	}
	minGZ -= rangeGZ * 0.05
	maxGZ += rangeGZ * 0.05
	rangeGZ = maxGZ - minGZ

	toX := func(a float64) float64 { return (a - minA) / rangeA * float64(width) }
	toY := func(gz float64) float64 { return float64(height) - (gz-minGZ)/rangeGZ*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	zeroY := toY(0)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, zeroY, width, zeroY))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range curve.Points {
		x := toX(p.AngleDeg)
		y := toY(p.GZ)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff4444"/>
</svg>`, toX(peak.AngleDeg), toY(peak.GZ)))

	return sb.String()
}
