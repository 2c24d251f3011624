package driver_selection

import (
	"math/rand/v2"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

// UniformRandom выбирает водителя равновероятно, каждый вызов независим от предыдущих.
type UniformRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewUniformRandom(src rand.Source) *UniformRandom {
	return &UniformRandom{
		rnd: rand.New(src),
	}
}

func (u *UniformRandom) Select(pool []entities.User) (*entities.User, error) {
	if len(pool) == 0 {
		return nil, order.ErrNoDriverAvailable
	}

	u.mu.Lock()
	idx := u.rnd.IntN(len(pool))
	u.mu.Unlock()

	driver := pool[idx]
	return &driver, nil
}

func (u *UniformRandom) Name() string {
	return PolicyUniformRandom
}
