package clock

import (
	"hotel/shared/model"
	"hotel/shared/timezone"
)

// Clock supplies "today" to everything that depends on the current day: occupancy, booking status
// and payment dates.
type Clock interface {
	Today() model.Date
}

type systemClock struct{}

func (systemClock) Today() model.Date {
	return model.DateOf(timezone.Now())
}

// System reads the wall clock in the application timezone.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	today model.Date
}

func (c fixedClock) Today() model.Date {
	return c.today
}

func Fixed(today model.Date) Clock {
	return fixedClock{today: today}
}
