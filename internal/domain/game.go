package domain

// Target amounts are drawn from [MinTarget, MaxTarget] cents.
const (
	MinTarget = 1
	MaxTarget = 99
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Status is the game's progress.
type Status int

const (
	InProgress Status = iota
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "in_progress"
}

// Feedback is the result of the last answer check. It is cleared whenever
// the selection changes.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackAddMore
	FeedbackRemoveSome
	FeedbackCorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackAddMore:
		return "add_more"
	case FeedbackRemoveSome:
		return "remove_some"
	case FeedbackCorrect:
		return "correct"
	default:
		return ""
	}
}

// Game is the state of one round of making exact change.
// The zero value is not usable; build one with NewGame or NewGameWithTarget.
type Game struct {
	target    int
	selection Selection
	status    Status
	feedback  Feedback
}

// NewGame starts a game with a target drawn from rng.
func NewGame(rng RNG) *Game {
	g := &Game{}
	g.Reset(rng)
	return g
}

// NewGameWithTarget starts a game with a fixed target, clamped to
// [MinTarget, MaxTarget].
func NewGameWithTarget(target int) *Game {
	return &Game{target: min(max(target, MinTarget), MaxTarget)}
}

func (g *Game) Target() int { return g.target }
func (g *Game) Status() Status { return g.status }
func (g *Game) Feedback() Feedback { return g.feedback }
func (g *Game) Selection() Selection { return g.selection }

// Total is the current selection's value in cents. It is recomputed on
// every call.
func (g *Game) Total() int { return g.selection.Total() }

// SelectCoin adds one coin of d. Ignored once the game is won.
func (g *Game) SelectCoin(d Denomination) {
	i := d.index()
	if g.status == Won || i < 0 {
		return
	}
	g.selection[i]++
	g.feedback = FeedbackNone
}

// RemoveCoin takes back one coin of d. Ignored once the game is won or when
// no coin of d is selected.
func (g *Game) RemoveCoin(d Denomination) {
	i := d.index()
	if g.status == Won || i < 0 || g.selection[i] == 0 {
		return
	}
	g.selection[i]--
	g.feedback = FeedbackNone
}

// CheckAnswer compares the selection against the target and records the
// feedback. An exact match wins the game.
func (g *Game) CheckAnswer() Feedback {
	switch total := g.Total(); {
	case total == g.target:
		g.feedback = FeedbackCorrect
		g.status = Won
	case total < g.target:
		g.feedback = FeedbackAddMore
	default:
		g.feedback = FeedbackRemoveSome
	}
	return g.feedback
}

// ClearSelection drops every selected coin. Status and target are kept.
// Ignored once the game is won, so a winning selection stays visible.
func (g *Game) ClearSelection() {
	if g.status == Won {
		return
	}
	g.clear()
}

func (g *Game) clear() {
	g.selection = Selection{}
	g.feedback = FeedbackNone
}

// Reset starts a new round with a fresh target.
func (g *Game) Reset(rng RNG) {
	g.target = MinTarget + rng.Intn(MaxTarget-MinTarget+1)
	g.clear()
	g.status = InProgress
}

// Snapshot is a read-only copy of a game's state.
type Snapshot struct {
	Target    int
	Selection Selection
	Total     int
	Status    Status
	Feedback  Feedback
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Target:    g.target,
		Selection: g.selection,
		Total:     g.Total(),
		Status:    g.status,
		Feedback:  g.feedback,
	}
}
