package renderer

import (
	"github.com/lixenwraith/gman-shooter/animation"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

const gridSpacing = 6

// ArenaRenderer draws the floor, the drifting grid and the wall
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !playable(ctx) {
		return
	}
	a := ctx.Layout.Arena

	floor, _ := ctx.View.Find(scene.IDFloor)
	buf.Fill(a.X, a.Y, a.W, a.H, render.FromScene(floor.Color))

	if grid, ok := ctx.View.Find(scene.IDGrid); ok {
		gridFg := render.RgbBackground.Blend(render.FromScene(grid.Color), 0.35)
		shift := animation.GridOffset(ctx.T, gridSpacing)
		for y := a.Y; y < a.Y+a.H; y += 2 {
			for x := a.X + shift; x < a.X+a.W; x += gridSpacing {
				buf.SetFgOnly(x, y, '·', gridFg, render.AttrNone)
			}
		}
	}

	if wall, ok := ctx.View.Find(scene.IDWall); ok {
		fillRect(buf, ctx.Layout.Footprint(wall), a, '▓', render.RgbMuted, render.FromScene(wall.Color))
	}
}
