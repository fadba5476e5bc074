package shooter

import "github.com/vovakirdan/arcade-shooters/internal/config"

// Variant tags which of the three shooters an engine runs.
type Variant string

const (
	VariantFighter Variant = config.VariantFighter
	VariantTargets Variant = config.VariantTargets
	VariantSpace   Variant = config.VariantSpace
)

// Motion selects how hostiles move each tick.
type Motion int

const (
	MotionLinear Motion = iota
	MotionBounce
	MotionHoming
)

func parseMotion(s string) Motion {
	switch s {
	case config.MotionBounce:
		return MotionBounce
	case config.MotionHoming:
		return MotionHoming
	default:
		return MotionLinear
	}
}

// String returns the config name of the motion.
func (m Motion) String() string {
	switch m {
	case MotionBounce:
		return config.MotionBounce
	case MotionHoming:
		return config.MotionHoming
	default:
		return config.MotionLinear
	}
}
