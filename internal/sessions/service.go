package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 12 * time.Hour

type Service struct {
	Repo Repo
	TTL  time.Duration
	Now  func() time.Time
	// OnEnd runs after a session is logged out or found expired.
	OnEnd func(id string)
}

func NewService(repo Repo, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{Repo: repo, TTL: ttl, Now: func() time.Time { return time.Now().UTC() }}
}

// Login opens a session for any non-empty email and password and seeds the greeting.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if s == nil || s.Repo == nil {
		return Session{}, errors.New("sessions service not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
		Turns:     []Turn{{Role: RoleAssistant, Content: greeting, CreatedAt: now}},
	}
	if err := s.Repo.Create(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Get returns a live session. Expired sessions are removed on sight.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	if s == nil || s.Repo == nil {
		return Session{}, errors.New("sessions service not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrNotFound
	}
	sess, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.expired(s.now()) {
		if err := s.Repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			return Session{}, err
		}
		s.ended(id)
		return Session{}, ErrExpired
	}
	return sess, nil
}

// Validate satisfies the session middleware lookup.
func (s *Service) Validate(ctx context.Context, id string) error {
	_, err := s.Get(ctx, id)
	return err
}

// History returns the conversation log in append order.
func (s *Service) History(ctx context.Context, id string) ([]Turn, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Turns, nil
}

// RecordExchange appends a question and its reply together and extends the session.
func (s *Service) RecordExchange(ctx context.Context, id, question, reply string) (Session, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Session{}, err
	}
	now := s.now()
	return s.Repo.Append(ctx, id, now.Add(s.TTL),
		Turn{Role: RoleUser, Content: question, CreatedAt: now},
		Turn{Role: RoleAssistant, Content: reply, CreatedAt: now},
	)
}

// Logout tears the session down.
func (s *Service) Logout(ctx context.Context, id string) error {
	if s == nil || s.Repo == nil {
		return errors.New("sessions service not configured")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.ended(id)
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) ended(id string) {
	if s.OnEnd != nil {
		s.OnEnd(id)
	}
}
