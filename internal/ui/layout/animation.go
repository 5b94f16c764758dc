package layout

import (
	"hash/fnv"
	"math"
	"time"
)

// AnimationKind names a presentational loop applied to a floating element.
type AnimationKind string

const (
	AnimationNone   AnimationKind = "none"
	AnimationFloat  AnimationKind = "float"
	AnimationPulse  AnimationKind = "pulse"
	AnimationRotate AnimationKind = "rotate"
)

// DefaultAnimationDuration is the cycle length used when an element
// declares none.
const DefaultAnimationDuration = 3 * time.Second

// floatAmplitude is how many rows a floating element drifts.
const floatAmplitude = 1.0

// Valid reports whether k is a known kind. The empty kind counts as none.
func (k AnimationKind) Valid() bool {
	switch k {
	case "", AnimationNone, AnimationFloat, AnimationPulse, AnimationRotate:
		return true
	default:
		return false
	}
}

// Animates reports whether k produces motion.
func (k AnimationKind) Animates() bool {
	return k == AnimationFloat || k == AnimationPulse || k == AnimationRotate
}

// AnimationBinding is the resolved animation of one element. Only Kind and
// Duration matter to the logical model; Phase staggers elements so their
// loops never run in lockstep.
type AnimationBinding struct {
	Kind     AnimationKind
	Duration time.Duration
	Active   bool
	Phase    float64
}

func bindAnimation(el FloatingElement, enabled bool) AnimationBinding {
	kind := el.Animation
	if kind == "" {
		kind = AnimationNone
	}
	duration := el.Duration
	if duration <= 0 {
		duration = DefaultAnimationDuration
	}
	return AnimationBinding{
		Kind:     kind,
		Duration: duration,
		Active:   enabled && kind.Animates(),
		Phase:    phaseOf(el.ID),
	}
}

// phaseOf spreads element ids over [0, 1).
func phaseOf(id string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return float64(h.Sum32()%1000) / 1000
}

// Progress returns the position within the current cycle, in [0, 1).
func (b AnimationBinding) Progress(elapsed time.Duration) float64 {
	if !b.Active || b.Duration <= 0 {
		return 0
	}
	return math.Mod(float64(elapsed)/float64(b.Duration)+b.Phase, 1)
}

// Frame is the presentational state of an element at one instant.
type Frame struct {
	OffsetY int
	Dim     bool
	Angle   float64
}

// FrameAt returns the element's frame after elapsed. rotation is the
// element's static rotation in degrees.
func (b AnimationBinding) FrameAt(elapsed time.Duration, rotation float64) Frame {
	frame := Frame{Angle: rotation}
	if !b.Active {
		return frame
	}
	p := b.Progress(elapsed)
	switch b.Kind {
	case AnimationFloat:
		frame.OffsetY = int(math.Round(-math.Sin(2*math.Pi*p) * floatAmplitude))
	case AnimationPulse:
		frame.Dim = p >= 0.5
	case AnimationRotate:
		frame.Angle = math.Mod(rotation+360*p, 360)
	}
	return frame
}

var rotationGlyphs = []string{"◐", "◓", "◑", "◒"}

// rotationGlyph picks the quarter-turn glyph for angle degrees.
func rotationGlyph(angle float64) string {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return rotationGlyphs[int(a/90)%len(rotationGlyphs)]
}
