package chat

import (
	"time"

	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/tutor"
)

// replyMsg carries the outcome of one tutor turn.
type replyMsg struct {
	Result *tutor.Result
	Err    error
}

// summaryMsg carries the end-of-session summary.
type summaryMsg struct {
	Summary *summary.Summary
	Err     error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time
