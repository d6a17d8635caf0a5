package game

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// recordingRenderer remembers overlays, score updates and the last frame.
type recordingRenderer struct {
	clears   int
	overlays []string
	scores   []int
	frame    map[core.Cell]Role
}

func (r *recordingRenderer) Clear() {
	r.clears++
	r.frame = make(map[core.Cell]Role)
}

func (r *recordingRenderer) DrawCell(c core.Cell, role Role) {
	if r.frame == nil {
		r.frame = make(map[core.Cell]Role)
	}
	r.frame[c] = role
}

func (r *recordingRenderer) DrawOverlayText(msg string) { r.overlays = append(r.overlays, msg) }
func (r *recordingRenderer) DrawScore(score int)        { r.scores = append(r.scores, score) }

func (r *recordingRenderer) lastOverlay() string {
	if len(r.overlays) == 0 {
		return ""
	}
	return r.overlays[len(r.overlays)-1]
}

type recordingAudio struct {
	cues []Cue
}

func (a *recordingAudio) Play(c Cue) { a.cues = append(a.cues, c) }

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fixture struct {
	s     *Session
	r     *recordingRenderer
	a     *recordingAudio
	sched *ManualScheduler
}

func newFixture(t *testing.T, seed int64) fixture {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	f := fixture{
		r:     &recordingRenderer{},
		a:     &recordingAudio{},
		sched: &ManualScheduler{},
	}
	var err error
	f.s, err = New(cfg, WithRenderer(f.r), WithAudio(f.a), WithScheduler(f.sched))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return f
}

// putFood places food at c, bypassing the placer.
func (f fixture) putFood(c core.Cell) {
	f.s.food = c
	f.s.hasFood = true
}

func cells(xy ...int) []core.Cell {
	out := make([]core.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestNewSessionIsIdle(t *testing.T) {
	f := newFixture(t, 1)

	if f.s.State() != StateIdle {
		t.Errorf("State() = %v, expected idle", f.s.State())
	}
	want := cells(100, 0, 75, 0, 50, 0, 25, 0, 0, 0)
	if got := f.s.snake.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("initial snake = %v, expected %v", got, want)
	}
	if f.s.dir.Current() != (core.Velocity{DX: 25}) {
		t.Errorf("initial velocity = %v, expected {25 0}", f.s.dir.Current())
	}
	if f.s.hasFood {
		t.Error("food should not be placed before the first start")
	}
	if c := f.s.Controls(); c != (Controls{Start: true}) {
		t.Errorf("Controls() = %+v, expected only Start enabled", c)
	}
	if f.r.lastOverlay() != MsgReady {
		t.Errorf("overlay = %q, expected %q", f.r.lastOverlay(), MsgReady)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	grid, _ := core.NewGrid(100, 100, 25)

	if _, err := New(core.RuntimeConfig{Grid: grid, InitialLength: 5}); err == nil {
		t.Error("New() should reject a snake longer than the row")
	}
	if _, err := New(core.RuntimeConfig{Grid: grid, InitialLength: 0}); err == nil {
		t.Error("New() should reject an empty snake")
	}
	if _, err := New(core.RuntimeConfig{InitialLength: 1}); err == nil {
		t.Error("New() should reject an empty grid")
	}

	row, _ := core.NewGrid(125, 25, 25)
	if _, err := New(core.RuntimeConfig{Grid: row, InitialLength: 5}); err == nil {
		t.Error("New() should reject a snake that fills the whole board")
	}
	if _, err := New(core.RuntimeConfig{Grid: row, InitialLength: 4}); err != nil {
		t.Errorf("New() with one free cell returned %v, expected success", err)
	}
}

func TestStartFromIdle(t *testing.T) {
	f := newFixture(t, 2)

	if !f.s.Start() {
		t.Fatal("Start() from idle should succeed")
	}
	if f.s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", f.s.State())
	}
	if !f.s.hasFood || f.s.snake.Contains(f.s.food) {
		t.Errorf("food should be placed off the snake, got %v (placed=%v)", f.s.food, f.s.hasFood)
	}
	if f.a.count(CueStart) != 1 {
		t.Errorf("start cue played %d times, expected 1", f.a.count(CueStart))
	}
	if !f.sched.Running() || f.sched.Period() != core.DefaultTickPeriod {
		t.Errorf("scheduler running=%v period=%v, expected running at %v", f.sched.Running(), f.sched.Period(), core.DefaultTickPeriod)
	}
	if c := f.s.Controls(); c != (Controls{Pause: true, Reset: true}) {
		t.Errorf("Controls() = %+v, expected Pause and Reset enabled", c)
	}

	// Start while running is ignored
	if f.s.Start() {
		t.Error("Start() while running should be ignored")
	}
	if f.sched.Starts() != 1 {
		t.Errorf("scheduler started %d times, expected 1", f.sched.Starts())
	}
}

func TestPauseAndResumeKeepsFood(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Start()
	food := f.s.food

	if !f.s.Pause() {
		t.Fatal("Pause() while running should succeed")
	}
	if f.s.State() != StatePaused {
		t.Errorf("State() = %v, expected paused", f.s.State())
	}
	if f.sched.Running() {
		t.Error("scheduler should be stopped while paused")
	}
	if f.r.lastOverlay() != MsgPaused {
		t.Errorf("overlay = %q, expected %q", f.r.lastOverlay(), MsgPaused)
	}
	if f.a.count(CuePause) != 1 {
		t.Errorf("pause cue played %d times, expected 1", f.a.count(CuePause))
	}
	if f.s.pauses != 1 {
		t.Errorf("pauses = %d, expected 1", f.s.pauses)
	}
	if c := f.s.Controls(); c != (Controls{Start: true, Reset: true}) {
		t.Errorf("Controls() = %+v, expected Start and Reset enabled", c)
	}

	// Ticks while paused change nothing
	before := f.s.Snapshot()
	f.s.Tick()
	if after := f.s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Tick() while paused changed state:\n%v\nvs\n%v", before, after)
	}

	if f.s.Pause() {
		t.Error("Pause() while paused should be ignored")
	}

	if !f.s.Start() {
		t.Fatal("Start() from paused should resume")
	}
	if f.s.food != food {
		t.Errorf("resume moved food from %v to %v", food, f.s.food)
	}
	if !f.sched.Running() {
		t.Error("scheduler should run again after resume")
	}
}

func TestSlideScenario(t *testing.T) {
	f := newFixture(t, 4)
	f.s.Start()
	f.putFood(core.Cell{X: 300, Y: 300})

	f.s.Tick()

	want := cells(125, 0, 100, 0, 75, 0, 50, 0, 25, 0)
	if got := f.s.snake.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("after one tick snake = %v, expected %v", got, want)
	}
	if f.s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", f.s.State())
	}
	if f.r.frame[core.Cell{X: 125, Y: 0}] != RoleHead {
		t.Error("head should be drawn with the head role")
	}
	if f.r.frame[core.Cell{X: 25, Y: 0}] != RoleBody {
		t.Error("tail should be drawn with the body role")
	}
	if _, ok := f.r.frame[core.Cell{X: 0, Y: 0}]; ok {
		t.Error("old tail cell should not be drawn after the board is cleared")
	}
}

func TestEatScenario(t *testing.T) {
	f := newFixture(t, 5)
	f.s.Start()
	f.putFood(core.Cell{X: 125, Y: 0})

	f.s.Tick()

	if f.s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", f.s.Score())
	}
	if f.s.snake.Len() != 6 {
		t.Errorf("snake length = %d, expected 6", f.s.snake.Len())
	}
	if f.s.snake.Head() != (core.Cell{X: 125, Y: 0}) {
		t.Errorf("head = %v, expected {125 0}", f.s.snake.Head())
	}
	if f.s.snake.Contains(f.s.food) {
		t.Errorf("new food %v placed on the snake", f.s.food)
	}
	if f.a.count(CueEat) != 1 {
		t.Errorf("eat cue played %d times, expected 1", f.a.count(CueEat))
	}
	if got := f.r.scores[len(f.r.scores)-1]; got != 1 {
		t.Errorf("score display = %d, expected 1", got)
	}
}

func TestTickDrawsFoodBeforeMoving(t *testing.T) {
	f := newFixture(t, 5)
	f.s.Start()
	eaten := core.Cell{X: 125, Y: 0}
	f.putFood(eaten)

	f.s.Tick()

	// The frame shows the head over the eaten food; the replacement is
	// drawn from the next tick on.
	if role, ok := f.r.frame[eaten]; !ok || role != RoleHead {
		t.Errorf("frame[%v] = %v (drawn=%v), expected the head", eaten, role, ok)
	}
	next := f.s.food
	if _, ok := f.r.frame[next]; ok {
		t.Errorf("replacement food %v should not be drawn until the next tick", next)
	}

	f.s.Tick()

	if _, ok := f.r.frame[next]; !ok {
		t.Errorf("replacement food %v should be drawn on the following tick", next)
	}
}

func TestWallCollisionScenario(t *testing.T) {
	f := newFixture(t, 6)
	f.s.Start()
	f.putFood(core.Cell{X: 400, Y: 400})
	f.s.snake = NewSnake(cells(0, 50, 25, 50, 50, 50)...)
	f.s.dir.current = core.Velocity{DX: -25}
	f.s.dir.pending = f.s.dir.current

	f.s.Tick()

	if f.s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", f.s.State())
	}
	if f.sched.Running() {
		t.Error("no further ticks should be scheduled after game over")
	}
	if got := f.s.snake.Cells(); !reflect.DeepEqual(got, cells(0, 50, 25, 50, 50, 50)) {
		t.Errorf("snake moved on a wall hit: %v", got)
	}
	if f.r.lastOverlay() != MsgGameOver {
		t.Errorf("overlay = %q, expected %q", f.r.lastOverlay(), MsgGameOver)
	}
	if f.a.count(CueLose) != 1 {
		t.Errorf("lose cue played %d times, expected 1", f.a.count(CueLose))
	}
	if c := f.s.Controls(); c != (Controls{Reset: true}) {
		t.Errorf("Controls() = %+v, expected only Reset enabled", c)
	}
	if f.s.Start() {
		t.Error("Start() after game over without reset should be ignored")
	}

	tick := f.s.tick
	f.s.Tick()
	if f.s.tick != tick {
		t.Error("Tick() after game over should be ignored")
	}
}

func TestSelfCollisionScenario(t *testing.T) {
	f := newFixture(t, 7)
	f.s.Start()
	f.putFood(core.Cell{X: 400, Y: 400})
	// Heading left along row 1 with the body curling below the head.
	f.s.snake = NewSnake(cells(25, 25, 50, 25, 50, 50, 25, 50, 0, 50)...)
	f.s.dir.current = core.Velocity{DX: -25}
	f.s.dir.pending = f.s.dir.current

	if !f.s.HandleAction(core.ActionDown) {
		t.Fatal("turning down should be accepted")
	}
	f.s.Tick()

	if f.s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", f.s.State())
	}
	if !f.s.grid.InBounds(f.s.snake.Head()) {
		t.Error("self collision happened in bounds, head should be on the board")
	}
	if f.sched.Running() {
		t.Error("scheduler should be stopped after self collision")
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	f := newFixture(t, 8)
	f.s.Start()
	f.putFood(core.Cell{X: 400, Y: 400})
	// A 2x2 loop: the head chases the tail, which moves away this tick.
	f.s.snake = NewSnake(cells(25, 25, 50, 25, 50, 50, 25, 50)...)
	f.s.dir.current = core.Velocity{DX: -25}
	f.s.dir.pending = core.Velocity{DY: 25}

	f.s.Tick()

	if f.s.State() != StateRunning {
		t.Errorf("State() = %v, expected running when entering the vacated tail cell", f.s.State())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	f := newFixture(t, 9)
	f.s.Start()
	f.putFood(core.Cell{X: 125, Y: 0})
	f.s.Tick()
	f.s.HandleAction(core.ActionDown)
	f.s.Tick()
	f.s.Pause()

	canonical := func(s *Session) (int, []core.Cell, core.Velocity, RunState, int) {
		return s.Score(), s.snake.Cells(), s.dir.pending, s.State(), s.pauses
	}

	f.s.Reset()
	s1, snake1, v1, st1, p1 := canonical(f.s)
	f.s.Reset()
	s2, snake2, v2, st2, p2 := canonical(f.s)

	if s1 != 0 || s2 != 0 {
		t.Errorf("score after reset = %d/%d, expected 0", s1, s2)
	}
	if !reflect.DeepEqual(snake1, snake2) || !reflect.DeepEqual(snake1, cells(100, 0, 75, 0, 50, 0, 25, 0, 0, 0)) {
		t.Errorf("snake after reset = %v / %v, expected the initial snake", snake1, snake2)
	}
	if v1 != v2 || v1 != (core.Velocity{DX: 25}) {
		t.Errorf("velocity after reset = %v / %v, expected {25 0}", v1, v2)
	}
	if st1 != StateRunning || st2 != StateRunning {
		t.Errorf("state after reset = %v / %v, expected running", st1, st2)
	}
	if p1 != 0 || p2 != 0 {
		t.Errorf("pauses after reset = %d / %d, expected 0", p1, p2)
	}
	if f.s.snake.Contains(f.s.food) {
		t.Error("food after reset should not be on the snake")
	}
	if f.a.count(CueStart) != 3 {
		t.Errorf("start cue played %d times, expected 3", f.a.count(CueStart))
	}
}

func TestResetAfterGameOver(t *testing.T) {
	f := newFixture(t, 10)
	f.s.Start()
	f.putFood(core.Cell{X: 400, Y: 400})
	f.s.HandleAction(core.ActionUp)
	f.s.Tick() // y < 0

	if f.s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", f.s.State())
	}
	if !f.s.HandleAction(core.ActionReset) {
		t.Fatal("reset action should be accepted after game over")
	}
	if f.s.State() != StateRunning || f.s.Score() != 0 {
		t.Errorf("after reset state=%v score=%d, expected running with 0", f.s.State(), f.s.Score())
	}
	if !f.sched.Running() {
		t.Error("scheduler should run after reset")
	}
}

func TestHandleActionRespectsControls(t *testing.T) {
	f := newFixture(t, 11)

	if f.s.HandleAction(core.ActionReset) {
		t.Error("reset should be disabled until the first start")
	}
	if f.s.HandleAction(core.ActionPause) {
		t.Error("pause should be disabled while idle")
	}
	if f.s.HandleAction(core.ActionQuit) {
		t.Error("quit is not a session action")
	}
	if !f.s.HandleAction(core.ActionStart) {
		t.Error("start should be enabled while idle")
	}
	if !f.s.HandleAction(core.ActionPause) {
		t.Error("pause should be enabled while running")
	}
}

func TestLengthAndBoundsInvariants(t *testing.T) {
	f := newFixture(t, 12)
	f.s.Start()
	rng := rand.New(rand.NewSource(99))
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for games := 0; games < 20; games++ {
		for i := 0; i < 500 && f.s.State() == StateRunning; i++ {
			if rng.Intn(3) == 0 {
				f.s.HandleAction(dirs[rng.Intn(len(dirs))])
			}
			f.s.Tick()

			if f.s.snake.Len() != 5+f.s.Score() {
				t.Fatalf("length = %d, expected %d", f.s.snake.Len(), 5+f.s.Score())
			}
			if f.s.State() == StateRunning {
				for _, c := range f.s.snake.Cells() {
					if !f.s.grid.InBounds(c) {
						t.Fatalf("segment %v out of bounds while running", c)
					}
				}
				if f.s.snake.Contains(f.s.food) {
					t.Fatalf("food %v under the snake", f.s.food)
				}
			}
			if v := f.s.dir.Current(); v.IsZero() {
				t.Fatal("velocity should never be zero once started")
			}
		}
		f.s.Reset()
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		f := newFixture(t, 12345)
		f.s.Start()
		for i := 0; i < 60; i++ {
			switch i {
			case 3:
				f.s.HandleAction(core.ActionDown)
			case 9:
				f.s.HandleAction(core.ActionRight)
			case 15:
				f.s.HandleAction(core.ActionDown)
			}
			f.s.Tick()
		}
		return f.s.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("same seed and inputs diverged:\n%v\nvs\n%v", snap1, snap2)
	}
}

func TestSnapshotString(t *testing.T) {
	f := newFixture(t, 13)
	f.s.Start()
	f.putFood(core.Cell{X: 300, Y: 300})
	f.s.Tick()

	got := f.s.Snapshot().String()
	want := fmt.Sprintf("Tick: 1, State: running, Score: 0, Pauses: 0\n"+
		"Snake len: 5, Head: (125, 0), Velocity: (25, 0)\n"+
		"Food: (300, 300) %s\n"+
		"Controls: start=false pause=true reset=true\n", f.s.fruit)
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
