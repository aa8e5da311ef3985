// Package scenery generates and steps the procedural backdrop: the
// perspective road, the tree line, stars and ambient glow orbs.
package scenery

import (
	"math"
	"math/rand"
	"sort"

	cfg "github.com/automoto/seasonscape/config"
)

// Side places a tree left or right of the road.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// Branch is one stroke off the trunk, in unscaled tree space.
type Branch struct {
	Y      float64
	Angle  float64
	Length float64
}

// Tree is an immutable record of one generated tree.
type Tree struct {
	Index      int // generation order, before sorting
	X, Y       float64
	Scale      float64
	Side       Side
	TrunkSway  float64
	Height     float64
	Thickness  float64
	Branches   []Branch
	CanopySeed float64
}

// Blob is one canopy circle in unscaled tree space.
type Blob struct {
	X, Y, R float64
}

// Layout holds the perspective geometry for a surface size.
type Layout struct {
	Width, Height   float64
	VanishingY      float64
	RoadTopLeft     float64
	RoadTopRight    float64
	RoadBottomLeft  float64
	RoadBottomRight float64
	RoadBottomY     float64
	TreeBottomY     float64
}

// NewLayout computes the road and tree line geometry for a surface.
func NewLayout(c *cfg.SceneConfig, width, height float64) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		VanishingY:      height * c.VanishingPoint,
		RoadTopLeft:     width/2 - c.RoadTopHalfWidth,
		RoadTopRight:    width/2 + c.RoadTopHalfWidth,
		RoadBottomLeft:  width * c.RoadBottomLeft,
		RoadBottomRight: width * c.RoadBottomRight,
		RoadBottomY:     height + c.RoadBottomDrop,
		TreeBottomY:     height + c.TreeSpanBelow,
	}
}

// TreeStep is the eased depth of tree i in [0, 1): trees come in pairs and
// get denser toward the viewer.
func TreeStep(i, count int, exponent float64) float64 {
	half := float64(count / 2)
	if half == 0 {
		return 0
	}
	return math.Pow(float64(i/2)/half, exponent)
}

// GenerateTree builds the randomised part of a tree at a placed position.
func GenerateTree(c *cfg.SceneConfig, x, y, scale float64, side Side, rng *rand.Rand) Tree {
	t := Tree{
		X:         x,
		Y:         y,
		Scale:     scale,
		Side:      side,
		TrunkSway: (rng.Float64() - 0.5) * c.TrunkSway,
		Height:    c.HeightMin + rng.Float64()*c.HeightRange,
		Thickness: c.ThicknessMin + rng.Float64()*c.ThicknessRange,
	}

	n := c.BranchMin
	if c.BranchExtra > 0 {
		n += rng.Intn(c.BranchExtra)
	}
	t.CanopySeed = rng.Float64() * c.CanopySeedMax

	base := 0.0
	if side == Left {
		base = math.Pi
	}
	t.Branches = make([]Branch, n)
	for i := range t.Branches {
		t.Branches[i] = Branch{
			Y:      c.BranchTop - float64(i)*c.BranchSpacing,
			Angle:  base + (rng.Float64()-0.5)*c.BranchSpread - c.BranchBias,
			Length: c.BranchLenMin + rng.Float64()*c.BranchLenRange,
		}
	}
	return t
}

// GenerateTrees lays out count trees along both road edges and returns them
// sorted by ascending scale, which is back-to-front draw order.
func GenerateTrees(c *cfg.SceneConfig, l Layout, count int, rng *rand.Rand) []Tree {
	trees := make([]Tree, 0, count)
	for i := 0; i < count; i++ {
		side := Left
		if i%2 == 1 {
			side = Right
		}
		step := TreeStep(i, count, c.TreeStepExponent)

		y := l.VanishingY + step*(l.TreeBottomY-l.VanishingY)
		scale := c.TreeScaleMin + step*(c.TreeScaleMax-c.TreeScaleMin)

		var x float64
		if side == Left {
			x = l.RoadTopLeft + step*(l.RoadBottomLeft-l.RoadTopLeft)
			x -= c.TreeOutwardBase + step*c.TreeOutwardStep
		} else {
			x = l.RoadTopRight + step*(l.RoadBottomRight-l.RoadTopRight)
			x += c.TreeOutwardBase + step*c.TreeOutwardStep
		}
		x += (rng.Float64() - 0.5) * (step * c.TreeJitter)

		t := GenerateTree(c, x, y, scale, side, rng)
		t.Index = i
		trees = append(trees, t)
	}

	// Stable so that pairs sharing a depth keep their left/right order.
	sort.SliceStable(trees, func(a, b int) bool {
		return trees[a].Scale < trees[b].Scale
	})
	return trees
}

// CanopyBlobs scatters n circles around an ellipse above the trunk.
func (t Tree) CanopyBlobs(n int) []Blob {
	blobs := make([]Blob, n)
	for i := range blobs {
		ang := float64(i) / float64(n) * math.Pi * 2
		dist := 55 + math.Sin(ang*4+t.CanopySeed)*40
		blobs[i] = Blob{
			X: math.Cos(ang) * dist,
			Y: -300 + math.Sin(ang)*dist*0.7,
			R: 65 + math.Sin(t.CanopySeed+float64(i))*20,
		}
	}
	return blobs
}

// BranchCurve returns the control and end points of a branch stroke that
// starts on the trunk at (0, b.Y).
func (b Branch) BranchCurve() (cx, cy, ex, ey float64) {
	cos, sin := math.Cos(b.Angle), math.Sin(b.Angle)
	cx = cos * b.Length * 0.6
	cy = b.Y + sin*b.Length*0.6
	ex = cos * b.Length
	ey = b.Y + sin*b.Length
	return cx, cy, ex, ey
}

// Alpha returns a colour alpha of base + scale*treeScale, clamped to 1.
func (t Tree) Alpha(base, scale float64) float64 {
	return math.Min(1, base+scale*t.Scale)
}
