package kdf

import "time"

// Status is reported once per completed derivation round.
type Status struct {
	Round     int
	Rounds    int
	Percent   int
	Elapsed   time.Duration
	Remaining time.Duration
}

// Progress receives derivation status. Implementations must return quickly;
// they run between Argon2 rounds.
type Progress interface {
	Update(Status)
}

// ProgressFunc adapts a plain function to Progress.
type ProgressFunc func(Status)

func (f ProgressFunc) Update(s Status) { f(s) }

type nopProgress struct{}

func (nopProgress) Update(Status) {}

func newStatus(round, rounds int, elapsed time.Duration) Status {
	s := Status{
		Round:   round,
		Rounds:  rounds,
		Percent: round * 100 / rounds,
		Elapsed: elapsed,
	}
	if round > 0 {
		s.Remaining = elapsed / time.Duration(round) * time.Duration(rounds-round)
	}
	return s
}
