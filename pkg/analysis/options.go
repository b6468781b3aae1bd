package analysis

import "time"

// Option changes a Service.
type Option func(*Service)

// OptClock sets the source of the current time.
func OptClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// OptLocation sets the time zone of calendar days in dashboards.
func OptLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// OptJobs sets the number of workers that decode batches for dashboards.
func OptJobs(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.jobs = n
		}
	}
}
