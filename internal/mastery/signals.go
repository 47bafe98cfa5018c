package mastery

const (
	// MasteryStreak is the correct-answer streak needed to advance.
	MasteryStreak = 3
	// MasteryQuestions is the number of questions on a concept needed to advance.
	MasteryQuestions = 3
	// CheckpointInterval is the number of exchanges between comprehension checkpoints.
	CheckpointInterval = 4
)

// MasteryReady reports whether the student may advance to a new concept.
func MasteryReady(s ConversationState) bool {
	return s.ConsecutiveCorrect >= MasteryStreak && s.QuestionsOnConcept >= MasteryQuestions
}

// CheckpointDue reports whether a comprehension checkpoint should be asked.
func CheckpointDue(s ConversationState) bool {
	return ExchangesSinceCheckpoint(s) >= CheckpointInterval
}

// ExchangesSinceCheckpoint returns the exchanges since the last checkpoint.
func ExchangesSinceCheckpoint(s ConversationState) int {
	return s.ExchangeCount - s.LastCheckpointExchange
}

// UnusedFormats returns the formats not yet asked in this rotation, in
// rotation order.
func UnusedFormats(s ConversationState) []QuestionFormat {
	out := make([]QuestionFormat, 0, len(Formats))
	for _, f := range Formats {
		if !s.Used(f) {
			out = append(out, f)
		}
	}
	return out
}

// Signals bundles the derived signals for one state.
type Signals struct {
	MasteryReady             bool             `json:"masteryReady"`
	CheckpointDue            bool             `json:"checkpointDue"`
	UnusedFormats            []QuestionFormat `json:"unusedFormats"`
	ExchangesSinceCheckpoint int              `json:"exchangesSinceCheckpoint"`
	Phase                    Phase            `json:"phase"`
}

// Derive computes every signal for s.
func Derive(s ConversationState) Signals {
	return Signals{
		MasteryReady:             MasteryReady(s),
		CheckpointDue:            CheckpointDue(s),
		UnusedFormats:            UnusedFormats(s),
		ExchangesSinceCheckpoint: ExchangesSinceCheckpoint(s),
		Phase:                    ResolvePhase(s),
	}
}
