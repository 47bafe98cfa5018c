package diagnosis

// CarelessStreak is the minimum correct streak before the miss for a wrong
// answer to be classified as a careless slip.
const CarelessStreak = 3

// CarelessClassifier flags a miss that ends a solid streak as a careless
// slip rather than a knowledge gap.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "careless" }

func (c *CarelessClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if input.State.ConsecutiveCorrect >= CarelessStreak {
		return CategoryCareless, 0.8
	}
	return "", 0
}
