package assess

import (
	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

// sessionStartedMsg is sent when question generation finishes.
type sessionStartedMsg struct {
	Session *assessment.Session
	Err     error
}

// answerScoredMsg is sent when the evaluator has scored (or failed to
// score) the submitted answer.
type answerScoredMsg struct {
	Question *assessment.Question
	Done     bool
	Err      error
}

// progressSavedMsg is sent after the finished assessment has been folded
// into the progress record and persisted.
type progressSavedMsg struct {
	Progress *progress.LearningProgress
	Err      error
}
