package session

import (
	sess "github.com/quizdrill/quizdrill/internal/session"
)

// takeStartedMsg is sent when the quiz has been loaded and scheduled.
type takeStartedMsg struct {
	State *sess.State
	Err   error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// takeEndMsg is sent to trigger the end-of-take flow.
type takeEndMsg struct{}
