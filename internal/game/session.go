// Package game implements the snake session: board state, the tick engine
// and the run state machine. Rendering, audio and tick delivery are
// collaborators passed in by the platform layer.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Overlay messages.
const (
	MsgReady    = "PRESS START"
	MsgPaused   = "PAUSE!"
	MsgGameOver = "GAME OVER!"
)

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the drawing surface.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithAudio sets the audio sink.
func WithAudio(a Audio) Option {
	return func(s *Session) { s.audio = a }
}

// WithScheduler sets the tick scheduler.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session owns one game: snake, food, score and run state.
// All methods must be called from a single goroutine (the event loop).
type Session struct {
	cfg    core.RuntimeConfig
	grid   core.Grid
	dir    *DirectionController
	placer *FoodPlacer

	snake   *Snake
	food    core.Cell
	fruit   Fruit
	hasFood bool
	score   int
	tick    uint64

	state   RunState
	started bool // left Idle at least once
	pauses  int

	renderer Renderer
	audio    Audio
	sched    Scheduler
	logger   *log.Logger
}

// New creates a session in the Idle state.
func New(cfg core.RuntimeConfig, opts ...Option) (*Session, error) {
	grid := cfg.Grid
	if grid.Cols() == 0 || grid.Rows() == 0 {
		return nil, fmt.Errorf("game: %w: empty board", core.ErrInvalidGrid)
	}
	if cfg.InitialLength < 1 || cfg.InitialLength > grid.Cols() {
		return nil, fmt.Errorf("game: initial length %d does not fit %d columns", cfg.InitialLength, grid.Cols())
	}
	if cells := grid.Cols() * grid.Rows(); cfg.InitialLength >= cells {
		return nil, fmt.Errorf("game: initial length %d leaves no free cell on %d cells", cfg.InitialLength, cells)
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultTickPeriod
	}

	s := &Session{
		cfg:      cfg,
		grid:     grid,
		dir:      NewDirectionController(grid),
		placer:   NewFoodPlacer(grid, rand.New(rand.NewSource(cfg.Seed))),
		snake:    initialSnake(grid, cfg.InitialLength),
		renderer: nopRenderer{},
		audio:    nopAudio{},
		sched:    &ManualScheduler{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.renderer.Clear()
	s.drawSnake()
	s.renderer.DrawScore(s.score)
	s.renderer.DrawOverlayText(MsgReady)
	return s, nil
}

// Controls returns the enabled state of the Start, Pause and Reset triggers.
func (s *Session) Controls() Controls {
	return controlsFor(s.state, s.started)
}

// State returns the current run state.
func (s *Session) State() RunState {
	return s.state
}

// Score returns the food eaten since the last reset.
func (s *Session) Score() int {
	return s.score
}

// HandleAction routes a player action. Triggers whose control is disabled
// and unknown actions are ignored.
func (s *Session) HandleAction(a core.Action) bool {
	switch {
	case a.IsDirection():
		return s.dir.OnInput(a)
	case a == core.ActionStart:
		return s.Start()
	case a == core.ActionPause:
		return s.Pause()
	case a == core.ActionReset:
		if !s.Controls().Reset {
			return false
		}
		s.Reset()
		return true
	}
	return false
}

// Start begins play from Idle or resumes from Paused. Food is placed only
// for a fresh game; a resumed game keeps its food.
func (s *Session) Start() bool {
	if !s.Controls().Start {
		return false
	}
	resuming := s.state == StatePaused

	s.setState(StateRunning)
	s.started = true
	if !resuming {
		s.placeFood()
	}
	s.renderer.Clear()
	s.drawFood()
	s.drawSnake()
	s.renderer.DrawScore(s.score)
	s.audio.Play(CueStart)
	s.sched.Start(s.cfg.TickPeriod)
	return true
}

// Pause freezes a running game.
func (s *Session) Pause() bool {
	if s.state != StateRunning {
		return false
	}
	s.sched.Stop()
	s.setState(StatePaused)
	s.pauses++
	s.audio.Play(CuePause)
	s.renderer.DrawOverlayText(MsgPaused)
	return true
}

// Reset restores the initial board (score 0, initial snake heading right)
// from any state and starts a new game.
func (s *Session) Reset() {
	s.sched.Stop()
	s.score = 0
	s.pauses = 0
	s.hasFood = false
	s.dir.Reset()
	s.snake = initialSnake(s.grid, s.cfg.InitialLength)
	s.setState(StateIdle)
	s.Start()
}

// Tick advances the game by one step. Ticks outside Running are ignored.
func (s *Session) Tick() {
	if s.state != StateRunning {
		return
	}
	s.tick++

	s.renderer.Clear()
	s.drawFood()

	head := s.snake.Advance(s.dir.Consume())
	switch {
	case s.hasFood && head == s.food:
		s.score++
		s.audio.Play(CueEat)
		s.snake.Grow(head)
		s.placeFood()
		s.renderer.DrawScore(s.score)
	case !s.grid.InBounds(head):
		s.gameOver("wall")
	default:
		s.snake.Slide(head)
	}
	s.drawSnake()

	if s.state == StateRunning && s.snake.SelfCollision() {
		s.gameOver("self")
	}

	if s.state == StateGameOver {
		s.renderer.DrawOverlayText(MsgGameOver)
		s.audio.Play(CueLose)
	}
}

// gameOver ends the current game.
func (s *Session) gameOver(cause string) {
	s.sched.Stop()
	s.setState(StateGameOver)
	s.logger.Info("game over", "cause", cause, "score", s.score, "length", s.snake.Len(), "tick", s.tick)
}

func (s *Session) setState(next RunState) {
	if next == s.state {
		return
	}
	s.logger.Debug("state change", "from", s.state, "to", next)
	s.state = next
}

// placeFood puts new food on a free cell.
func (s *Session) placeFood() {
	s.food, s.fruit = s.placer.Place(s.snake)
	s.hasFood = true
	s.logger.Debug("food placed", "x", s.food.X, "y", s.food.Y, "fruit", s.fruit)
}

func (s *Session) drawFood() {
	if !s.hasFood {
		return
	}
	if fd, ok := s.renderer.(FruitDrawer); ok {
		fd.DrawFruit(s.food, s.fruit)
		return
	}
	s.renderer.DrawCell(s.food, RoleFood)
}

// drawSnake paints tail to head so the head stays visible on a collision.
func (s *Session) drawSnake() {
	for i := s.snake.Len() - 1; i > 0; i-- {
		s.renderer.DrawCell(s.snake.body[i], RoleBody)
	}
	s.renderer.DrawCell(s.snake.Head(), RoleHead)
}
