package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// Outcome is the terminal state of an engine run.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeStopped
	OutcomeStalled
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeStopped:
		return "stopped"
	case OutcomeStalled:
		return "stalled"
	default:
		return "invalid"
	}
}
