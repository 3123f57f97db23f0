package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Renderer rasterizes cube instances onto a canvas.
type Renderer struct {
	Width, Height int

	FOV        float32 // vertical field of view, degrees
	Near, Far  float32
	CellAspect float32 // height of a terminal cell over its width
	Inset      float32 // fraction of a face covered by the sticker
}

// New creates a renderer for a width x height cell canvas.
func New(width, height int) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		FOV:        45,
		Near:       0.1,
		Far:        100,
		CellAspect: 2,
		Inset:      0.8,
	}
}

// Projection returns the perspective matrix for the canvas.
func (r *Renderer) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if r.Height > 0 && r.CellAspect > 0 {
		aspect = float32(r.Width) / (float32(r.Height) * r.CellAspect)
	}
	return mgl32.Perspective(mgl32.DegToRad(r.FOV), aspect, r.Near, r.Far)
}

// vertex is a projected corner: screen position, NDC depth and face-local
// uv in [-1, 1].
type vertex struct {
	x, y, z float32
	u, v    float32
}

var quadUV = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// faceCorners returns the four corners of face f of a unit cube centred at
// the origin, in the order of quadUV.
func faceCorners(f cube.Face) [4]mgl32.Vec3 {
	n := f.Normal().Mul(0.5)
	axis, _ := f.Axis()
	u := cube.Axis((int(axis) + 1) % 3).Unit().Mul(0.5)
	v := cube.Axis((int(axis) + 2) % 3).Unit().Mul(0.5)
	var out [4]mgl32.Vec3
	for i, uv := range quadUV {
		out[i] = n.Add(u.Mul(uv[0])).Add(v.Mul(uv[1]))
	}
	return out
}

// Render draws the instances as seen through view.
func (r *Renderer) Render(view mgl32.Mat4, items []Instance) *Canvas {
	cv := NewCanvas(r.Width, r.Height)
	r.Draw(cv, view, items)
	return cv
}

// Draw rasterizes the instances onto an existing canvas.
func (r *Renderer) Draw(cv *Canvas, view mgl32.Mat4, items []Instance) {
	if cv.Width == 0 || cv.Height == 0 {
		return
	}
	proj := r.Projection()

	for _, it := range items {
		modelView := view.Mul4(it.Model)
		mvp := proj.Mul4(modelView)

		for f := cube.Face(0); f < cube.NumFaces; f++ {
			col := it.Cubie.Colors[f]
			if col == cube.None {
				continue
			}

			// Back-face cull in view space, where the eye is the origin.
			centre := modelView.Mul4x1(f.Normal().Mul(0.5).Vec4(1)).Vec3()
			normal := modelView.Mul4x1(f.Normal().Vec4(0)).Vec3()
			if normal.Dot(centre) >= 0 {
				continue
			}

			poly := make([]clipVertex, 0, 5)
			for i, p := range faceCorners(f) {
				poly = append(poly, clipVertex{
					pos: mvp.Mul4x1(p.Vec4(1)),
					u:   quadUV[i][0],
					v:   quadUV[i][1],
				})
			}
			poly = clipNear(poly)
			if len(poly) < 3 {
				continue
			}

			screen := make([]vertex, len(poly))
			for i, cvx := range poly {
				screen[i] = cv.project(cvx)
			}
			for i := 1; i+1 < len(screen); i++ {
				r.triangle(cv, screen[0], screen[i], screen[i+1], col)
			}
		}
	}
}

// clipVertex is a face corner in clip space.
type clipVertex struct {
	pos  mgl32.Vec4
	u, v float32
}

// clipNear clips a convex polygon to the near plane, z >= -w in clip
// space. Everything kept has w >= Near, so the perspective divide is safe.
func clipNear(in []clipVertex) []clipVertex {
	out := make([]clipVertex, 0, len(in)+1)
	for i, a := range in {
		b := in[(i+1)%len(in)]
		da := a.pos.Z() + a.pos.W()
		db := b.pos.Z() + b.pos.W()
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out = append(out, clipVertex{
				pos: a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
				u:   a.u + (b.u-a.u)*t,
				v:   a.v + (b.v-a.v)*t,
			})
		}
	}
	return out
}

// project maps a clipped vertex to canvas coordinates.
func (cv *Canvas) project(c clipVertex) vertex {
	ndc := c.pos.Vec3().Mul(1 / c.pos.W())
	return vertex{
		x: (ndc.X() + 1) / 2 * float32(cv.Width),
		y: (1 - ndc.Y()) / 2 * float32(cv.Height),
		z: ndc.Z(),
		u: c.u,
		v: c.v,
	}
}

// triangle fills the cells whose centres fall inside a, b, c.
func (r *Renderer) triangle(cv *Canvas, a, b, c vertex, col cube.Color) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}

	minX := clampInt(int(math32.Floor(min3(a.x, b.x, c.x))), 0, cv.Width-1)
	maxX := clampInt(int(math32.Ceil(max3(a.x, b.x, c.x))), 0, cv.Width-1)
	minY := clampInt(int(math32.Floor(min3(a.y, b.y, c.y))), 0, cv.Height-1)
	maxY := clampInt(int(math32.Ceil(max3(a.y, b.y, c.y))), 0, cv.Height-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			u := w0*a.u + w1*b.u + w2*c.u
			v := w0*a.v + w1*b.v + w2*c.v

			cell := Cell{Kind: Sticker, Color: col}
			if math32.Abs(u) > r.Inset || math32.Abs(v) > r.Inset {
				cell = Cell{Kind: Edge, Color: col}
			}
			cv.plot(x, y, z, cell)
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(a, b vertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
