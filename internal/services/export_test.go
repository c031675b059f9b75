package services

import "time"

// SetNow overrides the review clock in tests.
func (svc *ReviewService) SetNow(now func() time.Time) {
	svc.now = now
}
