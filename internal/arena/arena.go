package arena

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/kinoline/kinoline/internal/model"
	"github.com/kinoline/kinoline/internal/playlist"
	"go-micro.dev/v4/logger"
)

// ErrNotEnoughCombatants is returned when a faceoff is attempted with fewer
// than two prepped combatants
var ErrNotEnoughCombatants = errors.New("two combatants must be prepped for a faceoff")

const combatantLimit = 2

// scoreScale normalizes the score gap into roughly [0, 1] given expected
// score magnitudes
const scoreScale = 100

// Arena holds up to two combatants and resolves faceoffs between them. The
// loser leaves the arena, the winner stays for the next round.
type Arena struct {
	combatants *playlist.Playlist
	stats      StatsUpdater
	rand       Source
	recorder   Recorder
}

func New(stats StatsUpdater, rand Source, recorder Recorder) *Arena {
	return &Arena{
		// combatants are never played, so the queue needs no stats updater
		combatants: playlist.NewBounded(combatantLimit, nil),
		stats:      stats,
		rand:       rand,
		recorder:   recorder,
	}
}

// Prep admits an item into the arena. At most two combatants fit; a third
// Prep fails with playlist.ErrFull.
func (a *Arena) Prep(item model.Item) error {
	if err := a.combatants.Add(item); err != nil {
		return err
	}
	logger.Infof("Prepped combatant '%s' (id %d)", item.Title, item.ID)
	return nil
}

// Clear removes all combatants
func (a *Arena) Clear() {
	a.combatants.Clear()
}

// Combatants returns the current combatants in prep order
func (a *Arena) Combatants() []model.Item {
	if a.combatants.Len() == 0 {
		return nil
	}
	items, _ := a.combatants.Items()
	return items
}

// Score computes the strength of a combatant from its catalog attributes
func Score(item model.Item) float64 {
	return item.Price*float64(len(item.Genre)) - item.Difficulty.Penalty()
}

// Battle resolves a faceoff between the two prepped combatants. The score gap
// is normalized and compared against a random draw: the first combatant wins
// when the gap exceeds the draw, otherwise the second one does. Stats are
// recorded for both sides, the loser is removed and the winner returned.
func (a *Arena) Battle(ctx context.Context) (model.Item, error) {
	if a.combatants.Len() < combatantLimit {
		return model.Item{}, ErrNotEnoughCombatants
	}

	first, _ := a.combatants.GetByPosition(1)
	second, _ := a.combatants.GetByPosition(2)

	firstScore := Score(first)
	secondScore := Score(second)
	delta := math.Abs(firstScore-secondScore) / scoreScale

	draw, err := a.rand.Draw(ctx)
	if err != nil {
		return model.Item{}, err
	}

	winner, loser := second, first
	winnerScore, loserScore := secondScore, firstScore
	if delta > draw {
		winner, loser = first, second
		winnerScore, loserScore = firstScore, secondScore
	}
	logger.Infof("Faceoff '%s' (%.3f) vs '%s' (%.3f): delta=%.3f, draw=%.3f, winner is '%s'",
		first.Title, firstScore, second.Title, secondScore, delta, draw, winner.Title)

	if err = a.stats.RecordOutcome(ctx, winner.ID, model.OutcomeWin); err != nil {
		return model.Item{}, err
	}
	if err = a.stats.RecordOutcome(ctx, loser.ID, model.OutcomeLoss); err != nil {
		return model.Item{}, err
	}

	if err = a.combatants.RemoveByID(loser.ID); err != nil {
		return model.Item{}, err
	}

	event := model.FaceoffEvent{
		ID:          uuid.NewString(),
		WinnerID:    winner.ID,
		LoserID:     loser.ID,
		WinnerScore: winnerScore,
		LoserScore:  loserScore,
		Delta:       delta,
		Draw:        draw,
		ResolvedAt:  time.Now(),
	}
	if err = a.recorder.RecordFaceoff(ctx, event); err != nil {
		logger.Warnf("Record faceoff event failed: %s", err)
	}

	return winner, nil
}
