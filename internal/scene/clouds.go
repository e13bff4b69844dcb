package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/rng"
)

// Cloud is one puff drifting over the town.
type Cloud struct {
	Position rl.Vector3
	Size     rl.Vector3
	Speed    float32
}

// Clouds drift along +X and wrap back to MinX once they pass MaxX.
type Clouds struct {
	Items      []Cloud
	MinX, MaxX float32
}

// NewClouds scatters n clouds over a square of side extent at the given altitude.
// The layout depends only on seed.
func NewClouds(seed int64, n int, extent, altitude float32) *Clouds {
	g := rng.New(seed)
	half := float64(extent) / 2
	c := &Clouds{Items: make([]Cloud, n), MinX: -extent / 2, MaxX: extent / 2}
	for i := range c.Items {
		c.Items[i] = Cloud{
			Position: rl.NewVector3(
				float32(g.Range(-half, half)),
				altitude+float32(g.Range(-6, 6)),
				float32(g.Range(-half, half)),
			),
			Size:  rl.NewVector3(float32(g.Range(14, 30)), float32(g.Range(3, 6)), float32(g.Range(8, 16))),
			Speed: float32(g.Range(1.5, 4)),
		}
	}
	return c
}

// Advance moves every cloud by its speed.
func (c *Clouds) Advance(dt float32) {
	span := c.MaxX - c.MinX
	if span <= 0 {
		return
	}
	for i := range c.Items {
		x := c.Items[i].Position.X + c.Items[i].Speed*dt
		for x > c.MaxX {
			x -= span
		}
		c.Items[i].Position.X = x
	}
}
