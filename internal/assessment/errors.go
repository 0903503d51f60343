package assessment

import "fmt"

// GenerationError indicates the evaluator returned no questions or a payload
// that failed validation. The engine recovers by degrading to a locally
// synthesized fallback question.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// EvaluationError indicates answer scoring failed. The engine recovers by
// recording the answer unscored and continuing the session.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("answer evaluation failed: %v", e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// ConfigurationError indicates the evaluator has no usable credentials.
// Fatal for the request that hit it; surfaced to the user rather than
// degraded around, since retrying cannot succeed.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evaluator not configured: %v", e.Err)
	}
	return "evaluator not configured"
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
