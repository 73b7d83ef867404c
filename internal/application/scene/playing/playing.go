// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/younwookim/spaceshooter/internal/application/input"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/application/view"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
)

// Playing is the main gameplay scene
type Playing struct {
	sess       *session.Session
	simulation *system.SimulationSystem
	difficulty *system.DifficultySystem

	// Outcome of the most recent step
	last system.StepResult
}

// New creates a new Playing scene over sess
func New(sess *session.Session) *Playing {
	return &Playing{
		sess:       sess,
		simulation: system.NewSimulationSystem(),
		difficulty: system.NewDifficultySystem(
			tuning.DifficultyInterval,
			tuning.SpawnCooldownStep,
			tuning.SpawnCooldownFloor,
		),
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64, in input.Source) (state.GameState, error) {
	if p.difficulty.Update(p.sess, dt) {
		log.Printf("[playing] spawn cooldown now %.2fs", p.sess.SpawnCooldown)
	}

	p.last = p.simulation.Step(p.sess, in, dt)

	// Running out of lives takes priority over a pause request
	if p.last.GameOver {
		log.Printf("[playing] game over: score=%d high=%d", p.sess.Score, p.sess.HighScore)
		return state.StateGameOver, nil
	}
	if in.JustPressed(input.ActionPause) {
		return state.StatePaused, nil
	}
	return state.StatePlaying, nil
}

// LastStep returns what happened in the most recent update
func (p *Playing) LastStep() system.StepResult {
	return p.last
}

// Draw renders the world and the HUD (implements scene.Scene)
func (p *Playing) Draw(sink render.Sink) {
	view.World(sink, p.sess)
	view.HUD(sink, p.sess)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.last = system.StepResult{}
}
