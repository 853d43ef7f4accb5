package session

import (
	"time"

	"github.com/quizdrill/quizdrill/internal/grade"
)

// Summary aggregates a finished (or abandoned) session.
type Summary struct {
	Total     int
	Correct   int
	Incorrect int
	Ungraded  int

	// Percent is the score over graded questions only, 0-100. A session
	// with no graded questions scores 0.
	Percent  float64
	Duration time.Duration
}

// Summarize computes the aggregate result of the questions answered so far.
func (s *State) Summarize(now time.Time) Summary {
	sum := Summary{Duration: now.Sub(s.StartedAt)}
	for _, r := range s.Results {
		sum.Total++
		switch r.Result.Verdict {
		case grade.Correct:
			sum.Correct++
		case grade.Ungraded:
			sum.Ungraded++
		default:
			sum.Incorrect++
		}
	}
	if graded := sum.Correct + sum.Incorrect; graded > 0 {
		sum.Percent = float64(sum.Correct) / float64(graded) * 100
	}
	return sum
}
