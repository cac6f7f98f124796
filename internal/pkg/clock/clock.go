package clock

import "time"

// Clock reads "now" in the console's configured time zone. Zero value uses
// time.Now in UTC.
type Clock struct {
	Location *time.Location
	NowFunc  func() time.Time
}

func New(loc *time.Location) Clock {
	return Clock{Location: loc}
}

// Fixed always returns t. Used in tests.
func Fixed(t time.Time) Clock {
	return Clock{Location: t.Location(), NowFunc: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	now := time.Now()
	if c.NowFunc != nil {
		now = c.NowFunc()
	}
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return now
}

// Today is the current date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Now().Format("2006-01-02")
}
