package evaluator

// Config holds the generation tuning shared by all evaluator calls.
// Assessment prompts want some variety between sessions but not enough to
// break the JSON contract, hence the moderate temperature and penalties.
type Config struct {
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// DefaultConfig returns the standard assessment tuning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        1000,
		Temperature:      0.7,
		TopP:             0.9,
		FrequencyPenalty: 0.3,
		PresencePenalty:  0.3,
	}
}
