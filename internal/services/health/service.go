package health

import "time"

// Status is the payload served by the health endpoint.
type Status struct {
	OK            bool   `json:"ok"`
	Env           string `json:"env,omitempty"`
	ExtractMode   string `json:"extractMode,omitempty"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Service encapsulates health-related checks.
type Service struct {
	Env         string
	ExtractMode string
	started     time.Time
	now         func() time.Time
}

// NewService constructs a new health service.
func NewService(env, extractMode string) *Service {
	return &Service{Env: env, ExtractMode: extractMode, started: time.Now(), now: time.Now}
}

// Status returns the current health payload. The service has no external
// dependencies, so it is healthy whenever it can answer.
func (s *Service) Status() Status {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return Status{
		OK:            true,
		Env:           s.Env,
		ExtractMode:   s.ExtractMode,
		UptimeSeconds: int64(now().Sub(s.started) / time.Second),
	}
}
