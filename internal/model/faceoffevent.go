package model

import "time"

// FaceoffEvent is a persisted record of a resolved faceoff
type FaceoffEvent struct {
	ID string `bson:"_id"`

	WinnerID int64
	LoserID  int64

	WinnerScore float64
	LoserScore  float64

	// Delta is the normalized score gap, Draw the random value it was
	// compared against
	Delta float64
	Draw  float64

	ResolvedAt time.Time
}
