package random

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Pseudo is an in-process source for setups without network access to
// random.org
type Pseudo struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPseudo() *Pseudo {
	return &Pseudo{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Draw returns a value in [0, 1)
func (p *Pseudo) Draw(_ context.Context) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64(), nil
}
