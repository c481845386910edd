package scheduler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"StockNewsCollector/internal/ports"
)

// Default collection time when the cron expression is missing or
// malformed: 06:00 KST, shortly after the Korean market news cycle
// picks up overnight US closes.
const (
	fallbackHour   = 6
	fallbackMinute = 0
)

// DailyScheduler fires the job once per day at the wall-clock time
// taken from the minute and hour fields of a cron expression, resolved
// in the aggregation timezone. Dom/month/dow fields are accepted but
// only `* * *` semantics are supported; the collector runs daily.
type DailyScheduler struct {
	minute int
	hour   int
	loc    *time.Location
	stop   chan struct{}
}

var _ ports.Scheduler = (*DailyScheduler)(nil)

// NewDailyScheduler parses the cron expression and binds the timezone
// the trigger times are computed in.
func NewDailyScheduler(spec string, loc *time.Location) *DailyScheduler {
	if loc == nil {
		loc = time.UTC
	}
	minute, hour := parseDailySpec(spec)
	return &DailyScheduler{minute: minute, hour: hour, loc: loc}
}

// parseDailySpec extracts minute and hour from a five-field cron
// expression. Anything unusable falls back to the default slot.
func parseDailySpec(spec string) (minute, hour int) {
	minute, hour = fallbackMinute, fallbackHour

	fields := strings.Fields(spec)
	if len(fields) < 2 {
		return minute, hour
	}
	if m, err := strconv.Atoi(fields[0]); err == nil && m >= 0 && m <= 59 {
		minute = m
	}
	if h, err := strconv.Atoi(fields[1]); err == nil && h >= 0 && h <= 23 {
		hour = h
	}
	return minute, hour
}

// nextAfter returns the first trigger time strictly after now.
func (s *DailyScheduler) nextAfter(now time.Time) time.Time {
	local := now.In(s.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.hour, s.minute, 0, 0, s.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Start launches the trigger loop. The job runs at the configured slot,
// not immediately; a fresh deployment waits for the next window so a
// mid-day restart does not double-collect.
func (s *DailyScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	go func() {
		for {
			next := s.nextAfter(time.Now())
			timer := time.NewTimer(time.Until(next))
			select {
			case t := <-timer.C:
				job(t.In(s.loc))
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the trigger goroutine.
func (s *DailyScheduler) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	s.stop = nil
	return nil
}
