package sessions

import "time"

// Speaker tags on conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const greeting = "Hi! I am your AI Career Assistant. How can I help you today?"

// Turn is one entry in a session's conversation log.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is a logged-in browser session and its conversation log.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Turns     []Turn    `json:"messages"`
}

func (s Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s Session) clone() Session {
	s.Turns = append([]Turn(nil), s.Turns...)
	return s
}
