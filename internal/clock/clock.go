package clock

import (
	"time"

	"mobility-rental-backend/internal/utils"
)

// Clock supplies "now"; "today" is derived from it in the clock's location.
type Clock interface {
	Now() time.Time
}

// Today returns the calendar date of c.Now()
func Today(c Clock) utils.Date {
	return utils.DateOf(c.Now())
}

type RealClock struct {
	loc *time.Location
}

// NewRealClock returns a wall clock reporting times in loc (UTC when nil)
func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
