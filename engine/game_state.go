package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/config"
)

// GameState is the match-scoped state block
// Constructed at match start, mutated only on the frame loop, discarded when the match ends
type GameState struct {
	MatchID uuid.UUID

	// Field dimensions in world units
	Width  float64
	Height float64

	// Entities
	Player      *components.Player
	Shield      *components.Shield
	Background  []*components.Layer
	Foreground  []*components.Layer
	Projectiles []*components.Projectile
	Enemies     []*components.Enemy
	Particles   []*components.Particle
	Explosions  []*components.Explosion

	// Ammo is fractional so power-up regeneration can accumulate per frame
	Ammo              float64
	MaxAmmo           float64
	AmmoTimer         time.Duration
	AmmoRegenInterval time.Duration

	EnemyTimer    time.Duration
	EnemyInterval time.Duration

	Score         int
	WinningScore  int
	ScoreEveryHit bool

	MatchTimer      time.Duration // Accumulator; resets when it fires
	Elapsed         time.Duration // Match time played, kept after game over
	MatchTimeLimit  time.Duration
	PowerUpDuration time.Duration
	GameOver        bool

	GameSpeed float64
	Debug     bool

	// Stats for the results screen
	Kills      int
	ShotsFired int
	Hits       int

	Sheets components.Sheets
}

// NewGameState builds a match from configuration and loaded sheets
// Every required sheet is checked up front so construction mid-match cannot fail on a missing asset
func NewGameState(cfg config.Match, sheets components.Sheets, width, height float64) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match config: %w", err)
	}
	if err := sheets.Require(); err != nil {
		return nil, fmt.Errorf("match assets: %w", err)
	}

	player, err := components.NewPlayer(sheets)
	if err != nil {
		return nil, err
	}
	shield, err := components.NewShield(sheets)
	if err != nil {
		return nil, err
	}
	background, err := components.NewBackgroundLayers(sheets, height)
	if err != nil {
		return nil, err
	}
	foreground, err := components.NewForegroundLayers(sheets, height)
	if err != nil {
		return nil, err
	}
	shield.Follow(player)

	return &GameState{
		MatchID:           uuid.New(),
		Width:             width,
		Height:            height,
		Player:            player,
		Shield:            shield,
		Background:        background,
		Foreground:        foreground,
		Ammo:              float64(cfg.StartAmmo),
		MaxAmmo:           float64(cfg.MaxAmmo),
		AmmoRegenInterval: cfg.AmmoRegenInterval,
		EnemyInterval:     cfg.EnemySpawnInterval,
		WinningScore:      cfg.WinningScore,
		ScoreEveryHit:     cfg.ScoreEveryHit,
		MatchTimeLimit:    cfg.MatchTimeLimit,
		PowerUpDuration:   cfg.PowerUpDuration,
		GameSpeed:         cfg.GameSpeed,
		Debug:             cfg.Debug,
		Sheets:            sheets,
	}, nil
}

// Won reports whether the score reached the winning threshold
func (g *GameState) Won() bool {
	return g.Score >= g.WinningScore
}

// AmmoCount returns the whole ammo units available to fire
func (g *GameState) AmmoCount() int {
	return int(g.Ammo)
}
