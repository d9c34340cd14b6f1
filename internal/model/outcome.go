package model

// Outcome is the result of a faceoff from one combatant's point of view
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

func (o Outcome) String() string {
	return string(o)
}
