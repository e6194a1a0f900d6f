package scheduling

import "time"

// Clock supplies the current time. The availability engine takes it as a
// dependency so the today-filter can be tested with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the system time.
func SystemClock() Clock { return systemClock{} }
