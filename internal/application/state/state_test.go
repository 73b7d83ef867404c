package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateMenu, "Menu"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Loading is the zero value so a fresh session starts there
	assert.Equal(t, GameState(0), StateLoading)
	assert.Equal(t, GameState(1), StateMenu)
	assert.Equal(t, GameState(2), StatePlaying)
	assert.Equal(t, GameState(3), StatePaused)
	assert.Equal(t, GameState(4), StateGameOver)
}

func TestGameState_CanTransition(t *testing.T) {
	allowed := map[GameState][]GameState{
		StateLoading:  {StateMenu},
		StateMenu:     {StatePlaying},
		StatePlaying:  {StatePaused, StateGameOver},
		StatePaused:   {StatePlaying, StateMenu},
		StateGameOver: {StatePlaying, StateMenu},
	}
	all := []GameState{StateLoading, StateMenu, StatePlaying, StatePaused, StateGameOver}

	for from, targets := range allowed {
		for _, to := range all {
			want := from == to
			for _, target := range targets {
				if target == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, GameState(99).CanTransition(StateMenu))
}
