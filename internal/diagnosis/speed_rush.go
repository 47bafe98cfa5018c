package diagnosis

import "time"

// SpeedRushThreshold is the maximum response time (exclusive) for a
// wrong answer to be classified as a speed-rush.
const SpeedRushThreshold = 2 * time.Second

// SpeedRushClassifier flags answers submitted too quickly as speed-rush errors.
type SpeedRushClassifier struct{}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if input.ResponseTime > 0 && input.ResponseTime < SpeedRushThreshold {
		return CategorySpeedRush, 0.9
	}
	return "", 0
}
