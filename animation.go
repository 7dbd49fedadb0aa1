package sttt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates the alpha of one Layer. Create one via TweenAlpha and
// call Update(dt) each tick. If the target layer is hidden before the group
// finishes, the group stops immediately.
type TweenGroup struct {
	tween  *gween.Tween
	target *Layer
	Done   bool
}

// Update advances the tween by dt seconds and writes the value to the
// target's Alpha.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if !g.target.Visible {
		g.Done = true
		return
	}

	val, finished := g.tween.Update(dt)
	g.target.Alpha = float64(val)
	g.Done = finished
}

// TweenAlpha creates a TweenGroup that animates layer.Alpha from from to to
// over duration seconds.
func TweenAlpha(layer *Layer, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	layer.Alpha = from
	return &TweenGroup{
		tween:  gween.New(float32(from), float32(to), duration, fn),
		target: layer,
	}
}
