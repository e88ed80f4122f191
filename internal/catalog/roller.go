package catalog

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=catalogmock slotgrid/internal/catalog Roller

// Roller rolls a single die with faces 1..size.
// Any rpg-toolkit dice.Roller satisfies it.
type Roller interface {
	Roll(size int) (int, error)
}

// ToolkitRoller rolls through rpg-toolkit's default random source.
type ToolkitRoller struct{}

func (ToolkitRoller) Roll(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, fmt.Errorf("roll d%d: %w", size, err)
	}
	return roll.GetValue(), nil
}

var _ dice.Roller = (*SeededRoller)(nil)

// SeededRoller is a deterministic roller for reproducible grids.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a PCG-backed roller.
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice. Together with Roll it makes SeededRoller usable
// wherever rpg-toolkit expects a dice.Roller.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
