package llm

import "context"

// Advisor answers a free-text career question.
// Implementations absorb every failure into the returned display string.
type Advisor interface {
	Ask(ctx context.Context, question string) string
}

// AdvisorFunc adapts a plain function to Advisor.
type AdvisorFunc func(ctx context.Context, question string) string

// Ask calls f.
func (f AdvisorFunc) Ask(ctx context.Context, question string) string {
	return f(ctx, question)
}

// Outcome names the terminal state of one advice call.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeErrored   Outcome = "errored"
	OutcomeSkipped   Outcome = "skipped"
)

// Answer is an advice reply plus how it was reached.
type Answer struct {
	Text     string
	Outcome  Outcome
	Attempts int
}

// Answerer is implemented by advisors that report outcomes alongside the reply.
type Answerer interface {
	Answer(ctx context.Context, question string) Answer
}

// Consult asks a, preferring the richer Answerer form when available.
func Consult(ctx context.Context, a Advisor, question string) Answer {
	if ans, ok := a.(Answerer); ok {
		return ans.Answer(ctx, question)
	}
	return Answer{Text: a.Ask(ctx, question), Outcome: OutcomeSucceeded, Attempts: 1}
}
