package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/motion"
)

// cornerSegments is the number of edges used to approximate each rounded
// corner.
const cornerSegments = 6

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// whiteSource returns a white texture for DrawTriangles. Sampling the inner
// pixel of a 3x3 image avoids bleeding at the edges.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Renderer draws a scene's layer tree from presentation values. Buffers are
// reused across frames.
type Renderer struct {
	vertices []ebiten.Vertex
	indices  []uint16
	outline  []motion.Vec2
}

// DrawScene draws every layer under the scene root onto dst.
func (r *Renderer) DrawScene(dst *ebiten.Image, scene *motion.Scene) {
	r.drawLayer(dst, scene.Root(), motion.Identity, 1)
}

func (r *Renderer) drawLayer(dst *ebiten.Image, l *motion.Layer, parent motion.Transform, parentAlpha float64) {
	st := l.Presentation()
	alpha := parentAlpha * clamp01(st.Opacity)
	if alpha <= 0 {
		return
	}
	world := st.LocalTransform().Concat(parent)
	if st.BackgroundColor.A > 0 && st.Bounds.Size.Width > 0 && st.Bounds.Size.Height > 0 {
		r.fillRoundedRect(dst, st.Bounds, st.CornerRadius, world, st.BackgroundColor, alpha)
	}

	for _, c := range sortedSublayers(l) {
		r.drawLayer(dst, c, world, alpha)
	}
}

// sortedSublayers orders sublayers by zPosition, keeping insertion order for
// ties.
func sortedSublayers(l *motion.Layer) []*motion.Layer {
	subs := append([]*motion.Layer(nil), l.Sublayers()...)
	z := make(map[*motion.Layer]float64, len(subs))
	for _, c := range subs {
		z[c] = c.Presentation().ZPosition
	}
	sort.SliceStable(subs, func(i, j int) bool { return z[subs[i]] < z[subs[j]] })
	return subs
}

// fillRoundedRect fills r, with corners rounded by radius, transformed by
// world. The shape is convex, so a triangle fan from its center suffices.
func (r *Renderer) fillRoundedRect(dst *ebiten.Image, rect motion.Rect, radius float64, world motion.Transform, c motion.Color, alpha float64) {
	r.outline = roundedRectOutline(r.outline[:0], rect, radius)

	a := float32(clamp01(c.A) * alpha)
	cr := float32(clamp01(c.R)) * a
	cg := float32(clamp01(c.G)) * a
	cb := float32(clamp01(c.B)) * a

	center := world.Apply(motion.Vec2{
		X: rect.Origin.X + rect.Size.Width/2,
		Y: rect.Origin.Y + rect.Size.Height/2,
	})
	r.vertices = append(r.vertices[:0], vertex(center, cr, cg, cb, a))
	for _, p := range r.outline {
		r.vertices = append(r.vertices, vertex(world.Apply(p), cr, cg, cb, a))
	}
	n := uint16(len(r.outline))
	r.indices = r.indices[:0]
	for i := uint16(0); i < n; i++ {
		r.indices = append(r.indices, 0, 1+i, 1+(i+1)%n)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(r.vertices, r.indices, whiteSource(), op)
}

// roundedRectOutline appends the outline of rect, clockwise from the top
// left corner. The radius is clamped to half the shorter side.
func roundedRectOutline(buf []motion.Vec2, rect motion.Rect, radius float64) []motion.Vec2 {
	x0, y0 := rect.Origin.X, rect.Origin.Y
	x1, y1 := x0+rect.Size.Width, y0+rect.Size.Height
	radius = math.Min(radius, math.Min(rect.Size.Width, rect.Size.Height)/2)
	if radius <= 0 {
		return append(buf, motion.Vec2{X: x0, Y: y0}, motion.Vec2{X: x1, Y: y0}, motion.Vec2{X: x1, Y: y1}, motion.Vec2{X: x0, Y: y1})
	}
	corners := [4]struct{ cx, cy, start float64 }{
		{x0 + radius, y0 + radius, math.Pi},
		{x1 - radius, y0 + radius, 1.5 * math.Pi},
		{x1 - radius, y1 - radius, 0},
		{x0 + radius, y1 - radius, 0.5 * math.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + float64(i)/cornerSegments*math.Pi/2
			buf = append(buf, motion.Vec2{X: c.cx + radius*math.Cos(a), Y: c.cy + radius*math.Sin(a)})
		}
	}
	return buf
}

func vertex(p motion.Vec2, r, g, b, a float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 1.5, SrcY: 1.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
