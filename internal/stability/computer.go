package stability

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/gzlab/internal/hydro"
)

// ErrInvalidKG reports a KG that is non-positive or outside the
// operating envelope.
var ErrInvalidKG = errors.New("invalid kg")

// Envelope is the documented operating range the engine enforces on
// its inputs, independent of any clamping the UI layer may do.
type Envelope struct {
	MinDraft  float64
	MaxDraft  float64
	MinKG     float64
	MaxKG     float64
	DefaultKG float64
}

// Computer derives GZ curves from a hydrostatic table and a KN grid.
// It is pure: the tables are read-only and every call is independent,
// so a single Computer is safe to share across goroutines.
type Computer struct {
	hydro    *hydro.HydrostaticTable
	kn       *hydro.KNTable
	envelope Envelope
}

func NewComputer(ht *hydro.HydrostaticTable, kn *hydro.KNTable, env Envelope) *Computer {
	return &Computer{hydro: ht, kn: kn, envelope: env}
}

func (c *Computer) Envelope() Envelope { return c.envelope }

// Angles returns the heel angles the curve will be computed at.
func (c *Computer) Angles() []float64 { return c.kn.Angles() }

// Displacement interpolates the displacement for the given draft,
// enforcing both the operating envelope and the table domain.
func (c *Computer) Displacement(draft float64) (float64, error) {
	if draft < c.envelope.MinDraft || draft > c.envelope.MaxDraft {
		return 0, fmt.Errorf("%w: %.2f m outside operating envelope [%.1f, %.1f]",
			hydro.ErrDraftOutOfRange, draft, c.envelope.MinDraft, c.envelope.MaxDraft)
	}
	return c.hydro.Displacement(draft)
}

// Curve computes the GZ curve for one (draft, KG) pair:
//
//	GZ(angle) = KN(displacement, angle) - KG * sin(angle)
//
// evaluated at every tabulated heel angle, in ascending grid order.
// Negative GZ is valid output, not an error. Table range errors
// propagate unchanged; the computer never recovers or clamps.
func (c *Computer) Curve(draft, kg float64) (*Curve, error) {
	if err := c.validateKG(kg); err != nil {
		return nil, err
	}

	displacement, err := c.Displacement(draft)
	if err != nil {
		return nil, err
	}

	angles := c.kn.Angles()
	curve := &Curve{
		Displacement: displacement,
		Points:       make([]Point, 0, len(angles)),
	}
	for _, angle := range angles {
		kn, err := c.kn.KN(displacement, angle)
		if err != nil {
			return nil, err
		}
		gz := kn - kg*math.Sin(angle*math.Pi/180)
		curve.Points = append(curve.Points, Point{AngleDeg: angle, GZ: gz})
	}
	return curve, nil
}

func (c *Computer) validateKG(kg float64) error {
	if kg <= 0 {
		return fmt.Errorf("%w: %.2f m must be positive", ErrInvalidKG, kg)
	}
	if kg < c.envelope.MinKG || kg > c.envelope.MaxKG {
		return fmt.Errorf("%w: %.2f m outside operating envelope [%.1f, %.1f]",
			ErrInvalidKG, kg, c.envelope.MinKG, c.envelope.MaxKG)
	}
	return nil
}
