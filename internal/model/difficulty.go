package model

import (
	"fmt"
	"strings"
)

// Difficulty describes how demanding an item is on the viewer
type Difficulty string

const (
	DifficultyHigh Difficulty = "high"
	DifficultyMed  Difficulty = "med"
	DifficultyLow  Difficulty = "low"
)

// Easier items carry a bigger penalty, so demanding titles score higher in
// faceoffs
var difficultyPenalty = map[Difficulty]float64{
	DifficultyHigh: 1,
	DifficultyMed:  2,
	DifficultyLow:  3,
}

// Penalty returns the faceoff score penalty for the difficulty
func (d Difficulty) Penalty() float64 {
	return difficultyPenalty[d]
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyPenalty[d]
	return ok
}

func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty converts user input to a Difficulty, case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(s))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty: %s", s)
	}
	return d, nil
}
