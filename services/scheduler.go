package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartStatsLogger logs per-event registration counts on an interval
// so the on-duty organizer can watch sign-ups without hitting the
// admin panel. A failed tick is logged and skipped.
func (s *AdminService) StartStatsLogger(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			singles, err := s.Singles.Count(ctx)
			if err != nil {
				log.Printf("[Stats] DB error: %v", err)
				return
			}
			survival, err := s.Survival.Count(ctx)
			if err != nil {
				log.Printf("[Stats] DB error: %v", err)
				return
			}
			cortex, err := s.CodeCortex.Count(ctx)
			if err != nil {
				log.Printf("[Stats] DB error: %v", err)
				return
			}

			log.Printf("[Stats] dataalchemy=%d survival teams=%d codecortex teams=%d",
				singles, survival, cortex)
		}),
	)
}
