package view

import (
	"fmt"

	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Background draws the background texture stretched over the playfield, or
// the starfield when the texture is missing.
func Background(sink render.Sink, sess *session.Session) {
	if sink.HasTexture(render.TextureBackground) {
		dst := entity.Rect{W: tuning.ScreenWidth, H: tuning.ScreenHeight}
		sink.DrawTexture(render.TextureBackground, render.FullSource(sink, render.TextureBackground), dst, colorWhite)
		return
	}
	for _, s := range sess.Stars {
		// Stars snap to whole pixels
		r := entity.Rect{X: float64(int(s.Pos.X)), Y: float64(int(s.Pos.Y)), W: s.Size, H: s.Size}
		sink.FillRect(r, colorWhite)
	}
}

// World draws particles, projectiles, obstacles and the ship, back to front.
func World(sink render.Sink, sess *session.Session) {
	for _, p := range sess.Particles.Items() {
		if !p.Active {
			continue
		}
		c := p.Color
		c.A = uint8(255 * p.Alpha())
		sink.FillCircle(p.Pos, tuning.ParticleRadius, c)
	}

	for _, p := range sess.Projectiles.Items() {
		if p.Active {
			sink.FillCircle(p.Pos, p.Radius, colorWhite)
		}
	}

	obstacleTex := sink.HasTexture(render.TextureObstacle)
	for _, o := range sess.Obstacles.Items() {
		if !o.Active {
			continue
		}
		if obstacleTex {
			dst := entity.Rect{X: o.Pos.X - o.Radius, Y: o.Pos.Y - o.Radius, W: o.Radius * 2, H: o.Radius * 2}
			sink.DrawTexture(render.TextureObstacle, render.FullSource(sink, render.TextureObstacle), dst, colorWhite)
		} else {
			sink.FillCircle(o.Pos, o.Radius, colorGreen)
		}
	}

	Ship(sink, &sess.Ship)
}

// Ship draws the ship unless it is in the hidden phase of its blink.
func Ship(sink render.Sink, ship *entity.Ship) {
	if !ship.Visible() {
		return
	}
	if sink.HasTexture(render.TextureShip) {
		sink.DrawTexture(render.TextureShip, render.FullSource(sink, render.TextureShip), ship.Bounds(), colorWhite)
		return
	}
	halfW, halfH := ship.W/2, ship.H/2
	sink.FillTriangle(
		entity.Vec2{X: ship.Pos.X, Y: ship.Pos.Y - halfH},
		entity.Vec2{X: ship.Pos.X - halfW, Y: ship.Pos.Y + halfH},
		entity.Vec2{X: ship.Pos.X + halfW, Y: ship.Pos.Y + halfH},
		colorBlue,
	)
}

// HUD draws score and lives in the top-left corner
func HUD(sink render.Sink, sess *session.Session) {
	sink.DrawText(fmt.Sprintf("Score: %d", sess.Score), 16, 12, 24, colorRayWhite)
	sink.DrawText(fmt.Sprintf("Lives: %d", sess.Lives), 16, 40, 24, colorRed)
}
