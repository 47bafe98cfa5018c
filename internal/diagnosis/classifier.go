package diagnosis

// Classifier is a rule-based error classifier.
// Returns a category and confidence (0.0–1.0), or ("", 0) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorCategory, float64)
}

// DefaultClassifiers returns classifiers in priority order.
// A repeated wrong answer outranks timing: the student already saw that
// option marked wrong.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&RepeatedClassifier{},
		&SpeedRushClassifier{},
		&CarelessClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", 0, "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorCategory, float64, string) {
	for _, c := range classifiers {
		cat, conf := c.Classify(input)
		if cat != "" {
			return cat, conf, c.Name()
		}
	}
	return "", 0, ""
}

// Classify runs classifiers and falls back to CategoryUnclassified.
func Classify(classifiers []Classifier, input *ClassifyInput) Result {
	cat, conf, name := RunClassifiers(classifiers, input)
	if cat == "" {
		return Result{Category: CategoryUnclassified}
	}
	return Result{Category: cat, Confidence: conf, ClassifierName: name}
}
