package entity

import (
	"errors"
	"time"
)

var (
	ErrNotEnoughFreeSpaces = errors.New("not enough free spaces")
	ErrNegativeReservation = errors.New("reserved spaces must not be negative")
)

type Screening struct {
	ID          int64
	Title       string
	Date        time.Time
	TotalSpaces int
	FreeSpaces  int
}

// ReserveSpaces takes number seats off FreeSpaces. On error the screening is left untouched.
func (s *Screening) ReserveSpaces(number int) error {
	if number < 0 {
		return ErrNegativeReservation
	}
	if s.FreeSpaces < number {
		return ErrNotEnoughFreeSpaces
	}
	s.FreeSpaces -= number
	return nil
}
