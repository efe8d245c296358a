// Package ebiten renders overlay widgets onto an Ebitengine image and
// reads Ebitengine input.
package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/overlay"
)

type faceKey struct {
	size int
	bold bool
}

// Canvas implements overlay.Canvas with text/v2 and the Go fonts. Set
// Target before each Render pass.
type Canvas struct {
	Target *ebiten.Image

	regular, bold *text.GoTextFaceSource
	faces         map[faceKey]*text.GoTextFace
}

// NewCanvas parses the Go regular and bold faces.
func NewCanvas() (*Canvas, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse goregular: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %w", err)
	}
	return &Canvas{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

func (c *Canvas) face(size int, bold bool) *text.GoTextFace {
	k := faceKey{size, bold}
	if f, ok := c.faces[k]; ok {
		return f
	}
	src := c.regular
	if bold {
		src = c.bold
	}
	f := &text.GoTextFace{Source: src, Size: float64(size)}
	c.faces[k] = f
	return f
}

func lineHeight(f *text.GoTextFace) float64 {
	m := f.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureText implements overlay.TextMetrics.
func (c *Canvas) MeasureText(s string, size int, bold bool) overlay.Vec2 {
	f := c.face(size, bold)
	lh := lineHeight(f)
	w, h := text.Measure(s, f, lh)
	return overlay.Vec2{X: float32(w), Y: float32(max(h, lh))}
}

// FillRect implements overlay.Canvas.
func (c *Canvas) FillRect(r overlay.Rect, clr uint32) {
	if c.Target == nil {
		return
	}
	vector.DrawFilledRect(c.Target, r.X, r.Y, r.W, r.H, toColor(clr), false)
}

// DrawText implements overlay.Canvas.
func (c *Canvas) DrawText(s string, size int, bold bool, clr uint32, at overlay.Vec2, align overlay.Align) overlay.Rect {
	r := overlay.Rect{}.Resized(c.MeasureText(s, size, bold)).Aligned(align, at)
	if c.Target == nil || s == "" {
		return r
	}
	f := c.face(size, bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(toColor(clr))
	op.LineSpacing = lineHeight(f)
	text.Draw(c.Target, s, f, op)
	return r
}

func toColor(c uint32) color.RGBA {
	r, g, b, a := overlay.UnpackRGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
