package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"career-navigator/internal/llm"
	"career-navigator/internal/sessions"
	"career-navigator/internal/shared/metrics"
)

// Service forwards questions to the advisor and records each exchange on the session.
type Service struct {
	Sessions *sessions.Service
	Advisor  llm.Advisor
}

func NewService(s *sessions.Service, advisor llm.Advisor) *Service {
	return &Service{Sessions: s, Advisor: advisor}
}

// Exchange is the outcome of one chat submission.
type Exchange struct {
	Reply   string
	Outcome llm.Outcome
	Turns   []sessions.Turn
}

// Ask answers question for the session. The log only changes once a reply exists.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (Exchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Exchange{}, ErrEmptyQuestion
	}
	if utf8.RuneCountInString(question) > maxQuestionLength {
		return Exchange{}, fmt.Errorf("%w: at most %d characters", ErrQuestionTooLong, maxQuestionLength)
	}
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return Exchange{}, err
	}

	metrics.IncChatRequests()
	answer := llm.Consult(ctx, s.Advisor, question)

	sess, err := s.Sessions.RecordExchange(ctx, sessionID, question, answer.Text)
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{Reply: answer.Text, Outcome: answer.Outcome, Turns: sess.Turns}, nil
}

// History returns the session's conversation log.
func (s *Service) History(ctx context.Context, sessionID string) ([]sessions.Turn, error) {
	return s.Sessions.History(ctx, sessionID)
}
