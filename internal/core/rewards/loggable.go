package rewards

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
)

// Loggable tracks the sub-terms a reward adds up so they can be logged.
// Embed it, call Begin at the top of GetReward, Track for every term and
// return End.
type Loggable struct {
	terms map[string]float64
	step  float64
	total float64
	calls int
}

func (l *Loggable) Begin() {
	l.step = 0
}

// Track adds value to the current call's total and to the term's sum.
func (l *Loggable) Track(term string, value float64) {
	if l.terms == nil {
		l.terms = make(map[string]float64)
	}
	l.terms[term] += value
	l.step += value
}

func (l *Loggable) End() float64 {
	l.total += l.step
	l.calls++
	return l.step
}

// Calls is the number of GetReward calls since the last clear.
func (l *Loggable) Calls() int { return l.calls }

// Term returns the sum of a term since the last clear.
func (l *Loggable) Term(term string) float64 { return l.terms[term] }

func (l *Loggable) ClearChanges() {
	l.terms = nil
	l.step = 0
	l.total = 0
	l.calls = 0
}

// Log writes per-call means, scaled by weight.
func (l *Loggable) Log(r *report.Report, name string, weight float64) {
	if l.calls == 0 {
		return
	}
	n := float64(l.calls)
	r.AddAvg(name, weight*l.total/n)
	for term, sum := range l.terms {
		r.AddAvg(Key(name, term), weight*sum/n)
	}
}

// Key joins report key segments.
func Key(name, sub string) string {
	if name == "" {
		return sub
	}
	return name + "/" + sub
}

// plain adapts a Reward without a breakdown.
type plain struct {
	Loggable
	inner Reward
}

// AsLoggable wraps r so it can sit in a Combined. Rewards that already log
// are returned unchanged.
func AsLoggable(r Reward) LoggableReward {
	if lr, ok := r.(LoggableReward); ok {
		return lr
	}
	return &plain{inner: r}
}

func (p *plain) Reset(initial *game.State) { p.inner.Reset(initial) }

func (p *plain) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	p.Begin()
	p.step = p.inner.GetReward(player, state, prevAction)
	return p.End()
}

func (p *plain) GetConfig() Config { return &NoArgs{} }
