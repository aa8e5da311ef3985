package gamemath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Loop is a keyframe track that repeats forever. The keys are spread evenly
// over the loop duration.
type Loop struct {
	seq   *gween.Sequence
	value float64
}

// NewLoop builds a looping track through keys. A track needs at least two keys.
func NewLoop(keys []float64, seconds float64, easing ease.TweenFunc) *Loop {
	l := &Loop{seq: gween.NewSequence()}
	if len(keys) == 0 {
		return l
	}
	l.value = keys[0]
	if len(keys) < 2 || seconds <= 0 {
		return l
	}
	segment := float32(seconds / float64(len(keys)-1))
	for i := 0; i < len(keys)-1; i++ {
		l.seq.Add(gween.New(float32(keys[i]), float32(keys[i+1]), segment, easing))
	}
	l.seq.SetLoop(-1)
	return l
}

// Update advances the track by dt seconds and returns the new value.
func (l *Loop) Update(dt float64) float64 {
	if !l.seq.HasTweens() {
		return l.value
	}
	v, _, _ := l.seq.Update(float32(dt))
	l.value = float64(v)
	return l.value
}

// Value returns the value from the last Update.
func (l *Loop) Value() float64 {
	return l.value
}
