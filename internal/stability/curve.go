package stability

// Point is one computed point of a GZ curve.
type Point struct {
	AngleDeg float64 // heel angle, degrees
	GZ       float64 // righting arm, meters; negative past the vanishing angle
}

// Curve is a statical stability curve computed for one (draft, KG)
// pair: one point per tabulated heel angle, in ascending grid order.
// Curves are transient values; every input change yields a fresh one.
type Curve struct {
	Displacement float64 // tonnes, interpolated from the hydrostatic table
	Points       []Point
}

// GZValues returns just the GZ ordinates, in grid order. Convenient for
// plotting.
func (c *Curve) GZValues() []float64 {
	vals := make([]float64, len(c.Points))
	for i, p := range c.Points {
		vals[i] = p.GZ
	}
	return vals
}
