package config

import "math"

// Built-in dataset for MV Del Monte, the vessel the tool was written
// around. The hydrostatic table carries the corrected displacement
// figures; in particular 14.0 m resolves to 83,467 t, superseding the
// earlier 38,100 t value.
var delMonteHydrostatics = []HydroPoint{
	{Draft: 2.0, Displacement: 10000},
	{Draft: 3.0, Displacement: 13276},
	{Draft: 4.0, Displacement: 17070},
	{Draft: 5.0, Displacement: 21381},
	{Draft: 6.0, Displacement: 26210},
	{Draft: 7.0, Displacement: 31556},
	{Draft: 8.0, Displacement: 37419},
	{Draft: 9.0, Displacement: 43800},
	{Draft: 10.0, Displacement: 50698},
	{Draft: 11.0, Displacement: 58114},
	{Draft: 12.0, Displacement: 66048},
	{Draft: 13.0, Displacement: 74498},
	{Draft: 14.0, Displacement: 83467},
}

// DelMonte returns the built-in MV Del Monte dataset. The KN grid is
// derived from the vessel's cargo-ship form estimates (KB = 0.52*T,
// BM = T^2/2) at each tabulated draft, evaluated over heel angles
// 0..90 in 5 degree steps, with the legacy large-angle correction
// applied past 15 degrees. Each grid row sits at the displacement of
// its generating draft, so the two tables cover the same domain.
func DelMonte() *Vessel {
	angles := make([]float64, 0, 19)
	for a := 0.0; a <= 90.0; a += 5.0 {
		angles = append(angles, a)
	}

	displacements := make([]float64, len(delMonteHydrostatics))
	values := make([][]float64, len(delMonteHydrostatics))
	for i, p := range delMonteHydrostatics {
		displacements[i] = p.Displacement

		km := 0.52*p.Draft + p.Draft*p.Draft/2
		row := make([]float64, len(angles))
		for j, a := range angles {
			s := math.Sin(a * math.Pi / 180)
			kn := km * s
			if a > 15 {
				kn -= 0.5 * (p.Draft / 10) * s * s * a / 15
			}
			row[j] = kn
		}
		values[i] = row
	}

	return &Vessel{
		Name:         "MV Del Monte",
		Hydrostatics: delMonteHydrostatics,
		KN: KNGrid{
			Displacements: displacements,
			Angles:        angles,
			Values:        values,
		},
		Envelope: Envelope{
			MinDraft:  2.0,
			MaxDraft:  14.0,
			MinKG:     DefaultMinKG,
			MaxKG:     DefaultMaxKG,
			DefaultKG: DefaultKG,
		},
	}
}

// Vessels maps the built-in dataset names to their constructors.
var Vessels = map[string]func() *Vessel{
	"delmonte": DelMonte,
}

// VesselPreset returns a built-in dataset by name, or nil if unknown.
func VesselPreset(name string) *Vessel {
	fn, ok := Vessels[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListVessels returns the built-in dataset names.
func ListVessels() []string {
	names := make([]string, 0, len(Vessels))
	for name := range Vessels {
		names = append(names, name)
	}
	return names
}
