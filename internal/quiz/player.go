package quiz

import (
	"math/rand"
	"sync"
	"time"
)

type PlayerState string

const (
	StateLoading     PlayerState = "loading"
	StateNoQuestions PlayerState = "no_questions"
	StateActive      PlayerState = "active"
	StateCompleted   PlayerState = "completed"
)

type OptionStatus string

const (
	StatusNone    OptionStatus = ""
	StatusCorrect OptionStatus = "correct"
	StatusWrong   OptionStatus = "wrong"
)

const (
	// AdvanceDelay is the only path to the next question once an answer is
	// locked; there is no manual "next".
	AdvanceDelay = 1500 * time.Millisecond
	// FlashDelay clears the selected option's flash highlight, independent of
	// the advance transition.
	FlashDelay = 600 * time.Millisecond
)

// ScheduleFunc arms a delayed callback and returns its cancel. The default is
// time.AfterFunc; tests inject a manual scheduler so nothing sleeps.
type ScheduleFunc func(d time.Duration, f func()) (cancel func())

func realSchedule(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// Player drives one series' merged question run: Loading -> Active ->
// Completed, or straight to NoQuestions when the series is empty. It never
// persists anything; the completion callback hands (score, total) to the
// caller, which owns progress recording.
type Player struct {
	mu sync.Mutex

	rng      *rand.Rand
	schedule ScheduleFunc
	onDone   func(score, total int)

	imgs  []ImageQuestion
	texts []TextQuestion

	state    PlayerState
	run      []RunQuestion
	index    int
	score    int
	locked   bool
	selected int
	statuses []OptionStatus
	flashing int

	// gen invalidates pending timers across resets: a timer armed for an
	// older generation must never touch the current run.
	gen           uint64
	cancelAdvance func()
	cancelFlash   func()
}

type PlayerOption func(*Player)

func WithRand(rng *rand.Rand) PlayerOption {
	return func(p *Player) { p.rng = rng }
}

func WithScheduler(s ScheduleFunc) PlayerOption {
	return func(p *Player) { p.schedule = s }
}

// WithCompletion registers the callback invoked exactly once when the run
// finishes.
func WithCompletion(f func(score, total int)) PlayerOption {
	return func(p *Player) { p.onDone = f }
}

func NewPlayer(imgs []ImageQuestion, texts []TextQuestion, opts ...PlayerOption) *Player {
	p := &Player{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		schedule: realSchedule,
		imgs:     imgs,
		texts:    texts,
		state:    StateLoading,
		selected: -1,
		flashing: -1,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start builds the shuffled run and enters Active, or NoQuestions when both
// input lists are empty. Calling Start on an already started player is a
// no-op; use Reset for a fresh run.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateLoading {
		return
	}
	p.beginRunLocked()
}

func (p *Player) beginRunLocked() {
	p.run = buildRun(p.rng, p.imgs, p.texts)
	p.index = 0
	p.score = 0
	p.locked = false
	p.selected = -1
	p.flashing = -1
	if len(p.run) == 0 {
		p.state = StateNoQuestions
		return
	}
	p.state = StateActive
	p.statuses = make([]OptionStatus, p.run[0].OptionCount())
}

// Answer locks in option i for the current question. Once a selection is
// locked further calls are no-ops (answers cannot be changed), and the
// advance to the next question happens only via the armed timer. Returns
// whether the selection was accepted.
func (p *Player) Answer(i int) bool {
	p.mu.Lock()
	if p.state != StateActive || p.locked {
		p.mu.Unlock()
		return false
	}
	q := p.run[p.index]
	if i < 0 || i >= q.OptionCount() {
		p.mu.Unlock()
		return false
	}

	p.locked = true
	p.selected = i
	if q.OptionCorrect(i) {
		p.statuses[i] = StatusCorrect
	} else {
		p.statuses[i] = StatusWrong
	}
	p.flashing = i

	gen := p.gen
	p.cancelFlash = p.schedule(FlashDelay, func() { p.clearFlash(gen) })
	p.cancelAdvance = p.schedule(AdvanceDelay, func() { p.advance(gen) })
	p.mu.Unlock()
	return true
}

func (p *Player) clearFlash(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.flashing = -1
}

func (p *Player) advance(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.state != StateActive || !p.locked {
		p.mu.Unlock()
		return
	}
	if p.run[p.index].OptionCorrect(p.selected) {
		p.score++
	}
	if p.index+1 < len(p.run) {
		p.index++
		p.locked = false
		p.selected = -1
		p.flashing = -1
		p.statuses = make([]OptionStatus, p.run[p.index].OptionCount())
		p.mu.Unlock()
		return
	}

	p.state = StateCompleted
	score, total := p.score, len(p.run)
	done := p.onDone
	p.mu.Unlock()
	if done != nil {
		done(score, total)
	}
}

// Reset cancels any pending timers and rebuilds a freshly shuffled run from
// the original input lists.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidateTimersLocked()
	p.beginRunLocked()
}

// Close cancels pending timers without starting a new run. Must be called
// when the surrounding session goes away; a timer firing into a torn-down
// player is a leak.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidateTimersLocked()
}

func (p *Player) invalidateTimersLocked() {
	p.gen++
	if p.cancelAdvance != nil {
		p.cancelAdvance()
		p.cancelAdvance = nil
	}
	if p.cancelFlash != nil {
		p.cancelFlash()
		p.cancelFlash = nil
	}
}

func (p *Player) State() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Current returns the question being asked, or false outside Active.
func (p *Player) Current() (RunQuestion, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateActive {
		return RunQuestion{}, false
	}
	return p.run[p.index], true
}

func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Player) Score() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score
}

func (p *Player) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.run)
}

// OptionStatus reports the correct/wrong marker for option i of the current
// question; StatusNone before a selection is locked.
func (p *Player) OptionStatus(i int) OptionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.statuses) {
		return StatusNone
	}
	return p.statuses[i]
}

// Flashing returns the option index currently flashing, or -1.
func (p *Player) Flashing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flashing
}

// Run exposes the shuffled run order. Intended for rendering and tests.
func (p *Player) Run() []RunQuestion {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]RunQuestion, len(p.run))
	copy(out, p.run)
	return out
}
