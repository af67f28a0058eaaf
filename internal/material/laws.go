package material

import "math"

// Material constants

const (
	// Es is the modulus of elasticity of steel (MPa)
	Es = 200000.0

	// EpsilonC2 is the concrete strain at peak compressive stress
	EpsilonC2 = 0.002

	// EpsilonCU2 is the ultimate concrete compressive strain
	EpsilonCU2 = 0.0035

	// concreteTensionFailure is the strain at which cracked concrete is
	// assumed to carry no residual tension
	concreteTensionFailure = 0.01
)

// NewSteel builds a symmetric bilinear law for structural steel (girder
// type): elastic up to fy, linear hardening to fu at the failure strain.
func NewSteel(fy, fu, failureStrain float64) Law {
	return newBilinear(Girder, fy, fu, failureStrain)
}

// NewReinforcement builds the bilinear law of reinforcing steel, counted
// towards the slab group of a composite cross-section.
func NewReinforcement(fy, fu, failureStrain float64) Law {
	return newBilinear(Slab, fy, fu, failureStrain)
}

func newBilinear(typ SectionType, fy, fu, failureStrain float64) Law {
	epsilonY := fy / Es
	return NewLaw(typ,
		StressStrain{Strain: -failureStrain, Stress: -fu},
		StressStrain{Strain: -epsilonY, Stress: -fy},
		StressStrain{Strain: 0, Stress: 0},
		StressStrain{Strain: epsilonY, Stress: fy},
		StressStrain{Strain: failureStrain, Stress: fu},
	)
}

// NewElastic builds a linear elastic law clipped at the given failure
// strain, useful for parameter studies and testing.
func NewElastic(modulus, failureStrain float64, typ SectionType) Law {
	return NewLaw(typ,
		StressStrain{Strain: -failureStrain, Stress: -modulus * failureStrain},
		StressStrain{Strain: 0, Stress: 0},
		StressStrain{Strain: failureStrain, Stress: modulus * failureStrain},
	)
}

// NewConcrete builds the slab-type concrete law from the characteristic
// compressive strength fc (MPa). Compression (negative strains) follows
// the parabola-rectangle relation with the peak stress fc between
// EpsilonC2 and EpsilonCU2. Tension rises linearly to the cracking stress
// and drops steeply to zero afterwards.
func NewConcrete(fc float64) Law {
	fctm := 0.3 * math.Pow(fc, 2.0/3.0)
	ecm := 22000 * math.Pow(fc/10, 0.3)
	cracking := fctm / ecm

	points := []StressStrain{
		{Strain: -EpsilonCU2, Stress: -fc},
		{Strain: -EpsilonC2, Stress: -fc},
	}
	// parabola sampled between peak stress and zero strain
	for _, strain := range []float64{-0.0015, -0.001, -0.0005} {
		eta := -strain / EpsilonC2
		points = append(points, StressStrain{
			Strain: strain,
			Stress: -fc * (1 - (1-eta)*(1-eta)),
		})
	}
	points = append(points,
		StressStrain{Strain: 0, Stress: 0},
		StressStrain{Strain: cracking, Stress: fctm},
		StressStrain{Strain: 1.05 * cracking, Stress: 0},
		StressStrain{Strain: concreteTensionFailure, Stress: 0},
	)
	return NewLaw(Slab, points...)
}
