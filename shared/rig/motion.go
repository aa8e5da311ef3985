package rig

import (
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// Pose channels smoothed by springs.
const (
	chSquash = iota
	chFaceCY
	chFaceRX
	chFaceRY
	chEarCY
	chEarRY
	chCollarY
	chCollarHalfWidth
	chButtonCY
	chArmCY
	chFeatureY
	chHatY
	poseChannels
)

// Looping channels. While a loop is inactive its channel springs back to 0.
const (
	lpShiverX = iota
	lpShiverY
	lpHat
	lpBounce
	loopChannels
)

func (p Pose) channels() [poseChannels]float64 {
	return [poseChannels]float64{
		chSquash:          p.Squash,
		chFaceCY:          p.FaceCY,
		chFaceRX:          p.FaceRX,
		chFaceRY:          p.FaceRY,
		chEarCY:           p.EarCY,
		chEarRY:           p.EarRY,
		chCollarY:         p.CollarY,
		chCollarHalfWidth: p.CollarHalfWidth,
		chButtonCY:        p.ButtonCY,
		chArmCY:           p.ArmCY,
		chFeatureY:        p.FeatureY,
		chHatY:            p.HatY,
	}
}

func (p *Pose) setChannels(v [poseChannels]float64) {
	p.Squash = v[chSquash]
	p.FaceCY = v[chFaceCY]
	p.FaceRX = v[chFaceRX]
	p.FaceRY = v[chFaceRY]
	p.EarCY = v[chEarCY]
	p.EarRY = v[chEarRY]
	p.CollarY = v[chCollarY]
	p.CollarHalfWidth = v[chCollarHalfWidth]
	p.ButtonCY = v[chButtonCY]
	p.ArmCY = v[chArmCY]
	p.FeatureY = v[chFeatureY]
	p.HatY = v[chHatY]
}

// Frame is everything the renderer needs for one frame of the figure.
type Frame struct {
	Pose
	EyeX, EyeY       float64
	ShiverX, ShiverY float64
	BubbleR          float64
	BubbleX          float64
	HatAngle         float64 // degrees
	Bounce           float64 // companion offset, negative is up
	TitleX, TitleY   float64
}

// Motion owns the cross-frame state of the rig: the petting flag, the
// smoothed geometry and the keyframe loops.
type Motion struct {
	theme   cfg.Theme
	petting bool
	target  Pose

	pose  *gamemath.SpringField
	eyes  *gamemath.SpringField
	loops *gamemath.SpringField

	eyeX, eyeY float64

	shiverX, shiverY *gamemath.Loop
	bubble, bubbleX  *gamemath.Loop
	hat, bounce      *gamemath.Loop
	titleX, titleY   *gamemath.Loop

	frame Frame
}

// NewMotion creates the rig motion for a theme at rest on its idle pose.
func NewMotion(theme cfg.Theme, fps int) *Motion {
	c := &cfg.Rig
	m := &Motion{
		theme: theme,
		pose:  gamemath.NewSpringField(poseChannels, fps, c.Stiffness, c.Damping),
		eyes:  gamemath.NewSpringField(2, fps, c.Stiffness, c.EyeDamping),
		loops: gamemath.NewSpringField(loopChannels, fps, c.Stiffness, c.Damping),
	}
	m.target = DerivePose(theme, false)
	for i, v := range m.target.channels() {
		m.pose.Set(i, v)
	}
	m.buildTitle()
	m.buildLoops()
	m.frame = m.compose()
	return m
}

// Theme returns the theme the motion was built for.
func (m *Motion) Theme() cfg.Theme {
	return m.theme
}

// Petting reports whether the figure is being petted.
func (m *Motion) Petting() bool {
	return m.petting
}

// SetPetting updates the petting flag and reports whether it changed.
func (m *Motion) SetPetting(petting bool) bool {
	if m.petting == petting {
		return false
	}
	m.petting = petting
	m.target = DerivePose(m.theme, petting)
	m.buildLoops()
	return true
}

// LookAt aims the eyes at a pointer offset from the figure centre.
// A zero offset keeps the previous target.
func (m *Motion) LookAt(dx, dy float64) {
	x, y, ok := EyeTarget(dx, dy, cfg.Rig.EyeFalloff, cfg.Rig.EyeMaxOffset)
	if !ok {
		return
	}
	m.eyeX, m.eyeY = x, y
}

// EyeTarget returns the current eye target.
func (m *Motion) EyeTarget() (x, y float64) {
	return m.eyeX, m.eyeY
}

// Target returns the unsmoothed pose the springs are heading to.
func (m *Motion) Target() Pose {
	return m.target
}

// Frame returns the result of the last Step.
func (m *Motion) Frame() Frame {
	return m.frame
}

// Step advances springs by one frame and the keyframe loops by dt seconds.
func (m *Motion) Step(dt float64) Frame {
	for i, v := range m.target.channels() {
		m.pose.Step(i, v)
	}
	m.eyes.Step(0, m.eyeX)
	m.eyes.Step(1, m.eyeY)

	e := m.target.Expression
	m.stepLoop(lpShiverX, m.shiverX, e.Shiver, dt)
	m.stepLoop(lpShiverY, m.shiverY, e.Shiver, dt)
	m.stepLoop(lpHat, m.hat, e.HatSways, dt)
	m.stepLoop(lpBounce, m.bounce, e.CompanionsBounce, dt)
	if e.SnotBubble {
		m.bubble.Update(dt)
		m.bubbleX.Update(dt)
	}
	m.titleX.Update(dt)
	m.titleY.Update(dt)

	m.frame = m.compose()
	return m.frame
}

func (m *Motion) stepLoop(ch int, l *gamemath.Loop, active bool, dt float64) {
	if active {
		m.loops.Set(ch, l.Update(dt))
		return
	}
	m.loops.Step(ch, 0)
}

func (m *Motion) compose() Frame {
	var v [poseChannels]float64
	for i := range v {
		v[i] = m.pose.Value(i)
	}
	f := Frame{Pose: m.target}
	f.setChannels(v)
	f.EyeX, f.EyeY = clampLength(m.eyes.Value(0), m.eyes.Value(1), cfg.Rig.EyeMaxOffset)
	f.ShiverX = m.loops.Value(lpShiverX)
	f.ShiverY = m.loops.Value(lpShiverY)
	f.HatAngle = m.loops.Value(lpHat)
	f.Bounce = m.loops.Value(lpBounce)
	f.BubbleR = m.bubble.Value()
	f.BubbleX = m.bubbleX.Value()
	f.TitleX = m.titleX.Value()
	f.TitleY = m.titleY.Value()
	return f
}

// clampLength keeps spring overshoot inside the eye socket.
func clampLength(x, y, limit float64) (float64, float64) {
	nx, ny, d := gamemath.Direction(x, y)
	if d <= limit {
		return x, y
	}
	return nx * limit, ny * limit
}

// buildLoops rebuilds the expression loops so each starts from its first key.
func (m *Motion) buildLoops() {
	c := &cfg.Rig
	m.shiverX = gamemath.NewLoop([]float64{-c.ShiverX, c.ShiverX, -c.ShiverX, c.ShiverX, 0}, c.ShiverSeconds, ease.Linear)
	m.shiverY = gamemath.NewLoop([]float64{-c.ShiverY, c.ShiverY, -c.ShiverY, c.ShiverY, 0}, c.ShiverSeconds, ease.Linear)
	m.bubble = gamemath.NewLoop([]float64{c.BubbleMin, c.BubbleMax, c.BubbleMin}, c.BubbleSeconds, ease.InOutSine)
	m.bubbleX = gamemath.NewLoop([]float64{-c.ShiverX, c.ShiverX, -c.ShiverX}, c.ShiverSeconds, ease.Linear)

	sway, seconds := c.HatSway, c.HatSwaySeconds
	if m.petting {
		sway, seconds = c.HatPetSway, c.HatPetSeconds
	}
	m.hat = gamemath.NewLoop([]float64{0, sway, -sway, 0}, seconds, ease.InOutSine)
	m.bounce = gamemath.NewLoop([]float64{0, -c.BounceHeight, 0}, c.BounceSeconds, ease.InOutQuad)
}

func (m *Motion) buildTitle() {
	c := &cfg.Rig
	if cfg.PaletteFor(m.theme).TitleMotion == cfg.TitleBounce {
		m.titleX = gamemath.NewLoop([]float64{0}, 0, ease.Linear)
		m.titleY = gamemath.NewLoop([]float64{0, -c.TitleBounce, 0}, c.TitleSeconds, ease.OutQuad)
		return
	}
	m.titleX = gamemath.NewLoop([]float64{-c.TitleShiverX, c.TitleShiverX, -c.TitleShiverX, c.TitleShiverX, 0}, c.ShiverSeconds, ease.Linear)
	m.titleY = gamemath.NewLoop([]float64{-c.ShiverY, c.ShiverY, -c.ShiverY, c.ShiverY, 0}, c.ShiverSeconds, ease.Linear)
}
