package health

import "time"

// Status is the liveness payload.
type Status struct {
	OK               bool   `json:"ok"`
	AdviceConfigured bool   `json:"adviceConfigured"`
	AdviceModel      string `json:"adviceModel,omitempty"`
	UptimeSeconds    int64  `json:"uptimeSeconds"`
}

// Service encapsulates health-related checks.
type Service struct {
	adviceConfigured bool
	adviceModel      string
	startedAt        time.Time
	now              func() time.Time
}

// NewService constructs a new health service.
func NewService(adviceConfigured bool, adviceModel string) *Service {
	return &Service{
		adviceConfigured: adviceConfigured,
		adviceModel:      adviceModel,
		startedAt:        time.Now(),
		now:              time.Now,
	}
}

// Status reports liveness and whether the advice credential is present.
func (s *Service) Status() Status {
	return Status{
		OK:               true,
		AdviceConfigured: s.adviceConfigured,
		AdviceModel:      s.adviceModel,
		UptimeSeconds:    int64(s.now().Sub(s.startedAt) / time.Second),
	}
}
