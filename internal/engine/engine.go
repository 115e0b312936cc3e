// Package engine drives a board to completion by chaining deduction
// rules, falling back to snapshot-backed guessing when deduction
// stalls. The engine owns its board: after a rollback the live board
// is a restored snapshot, so callers must read state through the
// engine, never through a board reference captured earlier.
package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/ports"
	"github.com/maksim-shila/sudoku-solver/internal/strategy"
	"github.com/maksim-shila/sudoku-solver/internal/validator"
)

var (
	// ErrInvalidBoard means the input board already had duplicate
	// values; nothing was mutated.
	ErrInvalidBoard = errors.New("input board is invalid")
	// ErrAlreadyRunning means Solve was called while a run is active.
	ErrAlreadyRunning = errors.New("solve already in progress")
)

// pausePoll is how often a paused engine re-checks its flags. The
// guarantee is "no mutation while paused", not the interval itself.
const pausePoll = 50 * time.Millisecond

// hypothesis records a guess: the full board state just before the
// guess, plus where and what was guessed. Snapshots are never shared
// with the live board.
type hypothesis struct {
	snapshot *domain.Board
	row, col int
	value    uint8
}

type Engine struct {
	board      *domain.Board
	strategies []strategy.Func
	hypotheses []hypothesis
	reporter   ports.Reporter
	check      *validator.Flagger

	stepDelay atomic.Int64 // nanoseconds between mutations
	running   atomic.Bool
	paused    atomic.Bool
}

// New creates an engine over the given board. The reporter receives
// run-level messages; pass nil to discard them.
func New(b *domain.Board, rep ports.Reporter) *Engine {
	if rep == nil {
		rep = nopReporter{}
	}
	return &Engine{
		board:      b,
		strategies: strategy.Ordered(),
		reporter:   rep,
		check:      validator.New(),
	}
}

type nopReporter struct{}

func (nopReporter) Infof(string, ...any)  {}
func (nopReporter) Warnf(string, ...any)  {}
func (nopReporter) Errorf(string, ...any) {}

// Cells lists the live board's cells in row-major order.
func (e *Engine) Cells() []*domain.Cell { return e.board.Cells() }

// Cell returns the live board's cell at (row, col).
func (e *Engine) Cell(row, col int) *domain.Cell { return e.board.Cell(row, col) }

// Grid returns the live board's assigned values.
func (e *Engine) Grid() domain.Grid { return e.board.Grid() }

// Validate recomputes all validity flags and reports conflicts.
func (e *Engine) Validate() (bool, []domain.CellCoord) { return e.check.Validate(e.board) }

// IsValid reports the current validity flags without recomputing them.
func (e *Engine) IsValid() bool { return validator.IsValid(e.board) }

// Clone returns an idle engine over an independent copy of the live
// board, carrying the same step delay.
func (e *Engine) Clone() *Engine {
	cp := New(e.board.Clone(), e.reporter)
	cp.stepDelay.Store(e.stepDelay.Load())
	return cp
}

// SetStepDelay configures the pause inserted after every mutation,
// used to throttle visible progress for an observer. Zero disables
// throttling.
func (e *Engine) SetStepDelay(d time.Duration) { e.stepDelay.Store(int64(d)) }

func (e *Engine) StepDelay() time.Duration { return time.Duration(e.stepDelay.Load()) }

// Stop requests termination. It takes effect at the next suspension
// point inside the solving loop, not instantaneously.
func (e *Engine) Stop() { e.running.Store(false) }

// Pause suspends the solving loop at its next suspension point; the
// board is not mutated until Continue or Stop.
func (e *Engine) Pause() { e.paused.Store(true) }

// Continue resumes a paused run.
func (e *Engine) Continue() { e.paused.Store(false) }

func (e *Engine) IsRunning() bool { return e.running.Load() }
func (e *Engine) IsPaused() bool  { return e.paused.Load() }

// Solve drives the board to completion. onUpdate, if non-nil, is
// invoked synchronously after every observable mutation and before
// the next one. The run ends when the board is solved, Stop is called,
// the context is canceled, or no progress is possible.
func (e *Engine) Solve(ctx context.Context, onUpdate ports.CellUpdate) (domain.Outcome, ports.Stats, error) {
	if !e.running.CompareAndSwap(false, true) {
		return domain.OutcomeStopped, ports.Stats{}, ErrAlreadyRunning
	}
	defer e.running.Store(false)
	defer e.paused.Store(false)
	if onUpdate == nil {
		onUpdate = func(*domain.Cell) {}
	}

	start := time.Now()
	var st ports.Stats
	done := func(o domain.Outcome, err error) (domain.Outcome, ports.Stats, error) {
		st.Duration = time.Since(start)
		return o, st, err
	}

	if ok, conf := e.check.Validate(e.board); !ok {
		e.reporter.Errorf("input board has %d conflicting cells, refusing to solve", len(conf))
		return done(domain.OutcomeInvalid, ErrInvalidBoard)
	}

	for {
		if err := e.await(ctx); err != nil {
			return done(domain.OutcomeStopped, err)
		}
		if !e.running.Load() {
			return done(domain.OutcomeStopped, nil)
		}

		changed, err := e.pass(ctx, onUpdate)
		st.Passes++
		if err != nil {
			return done(domain.OutcomeStopped, err)
		}
		if !e.running.Load() {
			return done(domain.OutcomeStopped, nil)
		}

		if !changed && !e.board.Solved() {
			changed, err = e.intersectionPass(ctx, onUpdate)
			if err != nil {
				return done(domain.OutcomeStopped, err)
			}
			if !changed {
				switch e.guess(onUpdate) {
				case guessMade:
					st.Guesses++
					changed = true
				case guessDeadEnd:
					// A cell ran out of candidates: contradiction.
					if !e.rollback(onUpdate) {
						e.reporter.Errorf("contradiction with no hypothesis to retract")
						return done(domain.OutcomeInvalid, nil)
					}
					changed = true
				case guessNone:
					// No unfilled cell left; handled below as solved.
				}
			}
		}

		if ok, _ := e.check.Validate(e.board); !ok {
			if e.rollback(onUpdate) {
				continue
			}
			e.reporter.Errorf("contradiction with no hypothesis to retract")
			return done(domain.OutcomeInvalid, nil)
		}
		if e.board.Solved() {
			e.reporter.Infof("solved after %d passes and %d guesses", st.Passes, st.Guesses)
			return done(domain.OutcomeSolved, nil)
		}
		if !changed {
			e.reporter.Warnf("no progress on incomplete board, giving up")
			return done(domain.OutcomeStalled, nil)
		}
	}
}

// pass sweeps all cells in row-major order applying the rule chain,
// auto-filling sole candidates and propagating assignments to peers.
func (e *Engine) pass(ctx context.Context, onUpdate ports.CellUpdate) (bool, error) {
	changed := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if err := e.await(ctx); err != nil {
				return changed, err
			}
			if !e.running.Load() {
				return changed, nil
			}
			cell := e.board.Cell(r, c)
			if cell.HasValue() {
				continue
			}
			row, col, box := e.board.Row(r), e.board.Column(c), e.board.Box(r, c)

			if strategy.ByKnownCells(cell, row, col, box) {
				changed = true
				e.notify(onUpdate, cell)
			}
			if v, ok := cell.Candidates().Single(); ok {
				cell.Fill(v)
				changed = true
				e.notify(onUpdate, cell)
			} else {
				for _, apply := range e.strategies {
					if apply(cell, row, col, box) {
						changed = true
						e.notify(onUpdate, cell)
					}
				}
			}
			if cell.HasValue() && e.propagate(cell, onUpdate) {
				changed = true
			}
		}
	}
	return changed, nil
}

// propagate removes an assigned value from the candidates of all
// unfilled peers.
func (e *Engine) propagate(cell *domain.Cell, onUpdate ports.CellUpdate) bool {
	v := cell.Value()
	changed := false
	groups := [3][]*domain.Cell{
		e.board.Row(cell.Row()),
		e.board.Column(cell.Col()),
		e.board.Box(cell.Row(), cell.Col()),
	}
	for _, group := range groups {
		for _, p := range group {
			if p == cell || p.HasValue() || !p.Candidates().Has(v) {
				continue
			}
			p.SetCandidates(p.Candidates().Remove(v))
			changed = true
			e.notify(onUpdate, p)
		}
	}
	return changed
}

// intersectionPass runs the box-line fallback rule over every cell.
// The rule writes to peer candidates, so changed peers are diffed and
// reported individually.
func (e *Engine) intersectionPass(ctx context.Context, onUpdate ports.CellUpdate) (bool, error) {
	changed := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if err := e.await(ctx); err != nil {
				return changed, err
			}
			if !e.running.Load() {
				return changed, nil
			}
			cell := e.board.Cell(r, c)
			if cell.HasValue() {
				continue
			}
			row, col, box := e.board.Row(r), e.board.Column(c), e.board.Box(r, c)
			peers := append(append([]*domain.Cell{}, row...), col...)
			before := make([]domain.ValueSet, len(peers))
			for i, p := range peers {
				before[i] = p.Candidates()
			}
			if !strategy.BySquareIntersection(cell, row, col, box) {
				continue
			}
			changed = true
			for i, p := range peers {
				if !p.HasValue() && p.Candidates() != before[i] {
					e.notify(onUpdate, p)
				}
			}
		}
	}
	return changed, nil
}

type guessResult int

const (
	guessMade guessResult = iota
	guessDeadEnd
	guessNone
)

// guess picks the first unfilled cell with the fewest candidates in
// row-major order, snapshots the board and assigns the smallest
// candidate value.
func (e *Engine) guess(onUpdate ports.CellUpdate) guessResult {
	var target *domain.Cell
	for _, c := range e.board.Cells() {
		if c.HasValue() {
			continue
		}
		if target == nil || c.Candidates().Count() < target.Candidates().Count() {
			target = c
		}
	}
	if target == nil {
		return guessNone
	}
	v, ok := target.Candidates().Smallest()
	if !ok {
		return guessDeadEnd
	}
	e.hypotheses = append(e.hypotheses, hypothesis{
		snapshot: e.board.Clone(),
		row:      target.Row(),
		col:      target.Col(),
		value:    v,
	})
	target.Fill(v)
	e.reporter.Infof("guessing %d at r%dc%d (%d hypotheses held)",
		v, target.Row(), target.Col(), len(e.hypotheses))
	e.notify(onUpdate, target)
	return guessMade
}

// rollback retracts the most recent hypothesis: the live board becomes
// the snapshot, with the guessed value excluded from the target cell's
// candidates so the same wrong guess is not repeated. Every cell is
// reported once so observers can redraw, then a single step delay is
// applied.
func (e *Engine) rollback(onUpdate ports.CellUpdate) bool {
	n := len(e.hypotheses)
	if n == 0 {
		return false
	}
	h := e.hypotheses[n-1]
	e.hypotheses = e.hypotheses[:n-1]
	e.board = h.snapshot
	cell := e.board.Cell(h.row, h.col)
	cell.SetCandidates(cell.Candidates().Remove(h.value))
	e.reporter.Infof("guess %d at r%dc%d failed, snapshot restored", h.value, h.row, h.col)
	for _, c := range e.board.Cells() {
		onUpdate(c)
	}
	e.delay()
	return true
}

// await is the engine's suspension point: it honors context
// cancellation and polls while paused without touching the board.
func (e *Engine) await(ctx context.Context) error {
	for e.paused.Load() && e.running.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pausePoll):
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return nil
}

// notify reports one mutation, then applies the inter-step delay.
func (e *Engine) notify(onUpdate ports.CellUpdate, c *domain.Cell) {
	onUpdate(c)
	e.delay()
}

func (e *Engine) delay() {
	if d := e.StepDelay(); d > 0 {
		time.Sleep(d)
	}
}
