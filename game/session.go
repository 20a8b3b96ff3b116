package game

import (
	"fmt"
	"math/rand/v2"
)

// State is the session's lifecycle state.
type State uint8

const (
	// StateIdle is the state before the first game starts: the well is
	// shown empty and only start and exit inputs are accepted.
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
	// StateDone means the session has ended and the host should tear
	// down and restore its state.
	StateDone
)

var stateNames = [...]string{"idle", "running", "paused", "game-over", "done"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config holds session parameters. The zero value is usable; missing
// fields fall back to the standard well and a fixed seed.
type Config struct {
	Width      int
	Height     int
	StartLevel int
	Seed       uint64
	// PreviewCount is how many upcoming kinds the session keeps visible.
	PreviewCount int
}

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	// lockDelaySeconds is how long a grounded piece may still be moved
	// before it locks into the board.
	lockDelaySeconds = 0.5
	// spawnDelaySeconds is the gap between a lock and the next spawn.
	spawnDelaySeconds = 0.1
	// linesPerLevel is how many cleared lines advance the level by one.
	linesPerLevel = 10
)

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.StartLevel <= 0 {
		c.StartLevel = 1
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.PreviewCount <= 0 {
		c.PreviewCount = 1
	}
	return c
}

// Session owns one board, the active piece, the upcoming piece queue and
// the score counters, and runs the game's state machine. It is not safe
// for concurrent use; every tick and every input is expected to be
// processed to completion on one goroutine.
type Session struct {
	cfg   Config
	board *Board
	bag   *Bag
	tints *TintPicker

	active    Piece
	hasActive bool
	next      []Kind

	score int
	lines int
	state State

	fallAcc  float64
	lockAcc  float64
	spawnAcc float64
}

// NewSession creates a session in StateIdle with an empty board.
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	s := &Session{
		cfg:   cfg,
		board: NewBoard(cfg.Width, cfg.Height),
		bag:   NewBag(rng),
		tints: NewTintPicker(rng),
	}
	s.refillPreview()
	return s
}

// Board returns the session's board.
func (s *Session) Board() *Board { return s.board }

// Active returns the falling piece and whether one exists.
func (s *Session) Active() (Piece, bool) { return s.active, s.hasActive }

// NextKinds returns the upcoming kinds, soonest first.
func (s *Session) NextKinds() []Kind { return s.next }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// ScoreString returns the score zero-padded to six digits, the way the
// score counter is displayed.
func (s *Session) ScoreString() string { return fmt.Sprintf("%06d", s.score) }

// Lines returns the total number of cleared lines this game.
func (s *Session) Lines() int { return s.lines }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Level starts at the configured level and advances every ten cleared
// lines. It never decreases within a game.
func (s *Session) Level() int {
	return s.cfg.StartLevel + s.lines/linesPerLevel
}

// FallSpeed is the gravity rate in rows per second: a monotonic function
// of the level.
func (s *Session) FallSpeed() float64 {
	return 1.0 + 0.1*float64(s.Level())
}

// Apply feeds one input action through the state machine. Actions that are
// not valid in the current state are ignored; a rejected move leaves the
// active piece unchanged.
func (s *Session) Apply(a Action) {
	switch a {
	case ActionExit:
		switch s.state {
		case StateRunning:
			s.state = StatePaused
		case StateIdle, StatePaused, StateGameOver:
			s.state = StateDone
		}
		return
	case ActionStart:
		switch s.state {
		case StateIdle:
			s.start()
		case StatePaused:
			s.state = StateRunning
		case StateGameOver:
			s.reset()
			s.start()
		}
		return
	}

	if s.state != StateRunning || !s.hasActive {
		return
	}

	switch a {
	case ActionMoveLeft:
		s.tryMove(s.active.Moved(0, -1))
	case ActionMoveRight:
		s.tryMove(s.active.Moved(0, 1))
	case ActionRotateCW:
		s.tryMove(s.active.Rotated(TurnCW))
	case ActionRotateCCW:
		s.tryMove(s.active.Rotated(TurnCCW))
	case ActionSoftDrop:
		s.tryMove(s.active.Moved(1, 0))
	case ActionHardDrop:
		s.active = Dropped(s.board, s.active)
		s.LockActive()
	}
}

func (s *Session) tryMove(candidate Piece) bool {
	if !CanPlace(s.board, candidate) {
		return false
	}
	s.active = candidate
	return true
}

func (s *Session) start() {
	s.state = StateRunning
	s.SpawnNext()
}

func (s *Session) reset() {
	s.board.Clear()
	s.hasActive = false
	s.score = 0
	s.lines = 0
	s.fallAcc = 0
	s.lockAcc = 0
	s.spawnAcc = 0
}

// AdvanceGravity moves game time forward by dt seconds for the active
// piece: the fall accumulator steps the piece down one row at the current
// fall speed, and the lock timer accrues while the piece is grounded.
func (s *Session) AdvanceGravity(dt float64) {
	if s.state != StateRunning || !s.hasActive {
		return
	}

	grounded := !CanPlace(s.board, s.active.Moved(1, 0))
	if grounded {
		s.lockAcc += dt
	} else {
		s.lockAcc = 0
	}

	s.fallAcc += dt
	if s.fallAcc >= 1.0/s.FallSpeed() {
		s.fallAcc = 0
		if !grounded {
			s.active = s.active.Moved(1, 0)
		}
	}
}

// LockReady reports whether the active piece has been grounded long enough
// to lock.
func (s *Session) LockReady() bool {
	return s.state == StateRunning && s.hasActive && s.lockAcc >= lockDelaySeconds
}

// LockActive commits the active piece's cells into the board. The piece
// slot stays empty until the spawn delay elapses and SpawnNext runs.
func (s *Session) LockActive() {
	if !s.hasActive {
		return
	}
	s.board.Lock(s.active)
	s.hasActive = false
	s.fallAcc = 0
	s.lockAcc = 0
	s.spawnAcc = 0
}

// ClearCompletedRows removes every full row, scores each one and returns
// the number cleared. Points per row scale with the level; a row whose
// cells all share one tint scores double.
func (s *Session) ClearCompletedRows() int {
	if s.state != StateRunning {
		return 0
	}

	full := s.board.FullRows()
	if len(full) == 0 {
		return 0
	}

	earned := 0
	for _, row := range full {
		points := 100 * s.Level()
		if s.board.RowUniformTint(row) {
			points *= 2
		}
		earned += points
	}

	cleared := s.board.ClearFullRows()
	s.score += earned
	s.lines += cleared
	return cleared
}

// AdvanceSpawn accrues the spawn delay while no piece is active and spawns
// the next piece once it elapses. Returns true if a piece was spawned.
func (s *Session) AdvanceSpawn(dt float64) bool {
	if s.state != StateRunning || s.hasActive {
		return false
	}
	s.spawnAcc += dt
	if s.spawnAcc < spawnDelaySeconds {
		return false
	}
	s.SpawnNext()
	return true
}

// SpawnNext promotes the head of the preview queue to the active piece at
// the spawn position. If the spawn cells are already occupied the session
// transitions to StateGameOver and no piece becomes active.
func (s *Session) SpawnNext() {
	kind := s.next[0]
	s.next = s.next[1:]
	s.refillPreview()

	piece := Piece{
		Kind: kind,
		Row:  -1,
		Col:  (s.board.Width - 4) / 2,
		Tint: s.tints.Next(),
	}

	if !CanPlace(s.board, piece) {
		s.state = StateGameOver
		s.hasActive = false
		return
	}

	s.active = piece
	s.hasActive = true
	s.fallAcc = 0
	s.lockAcc = 0
	s.spawnAcc = 0
}

func (s *Session) refillPreview() {
	for len(s.next) < s.cfg.PreviewCount {
		s.next = append(s.next, s.bag.Next())
	}
}
