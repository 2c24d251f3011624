package driver_selection

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	PolicyUniformRandom = "uniform_random"
)

var ErrUnknownPolicy = errors.New("unknown driver selection policy")

// New собирает политику выбора водителя по имени из конфигурации.
func New(name string) (*UniformRandom, error) {
	switch name {
	case PolicyUniformRandom, "":
		seed := uint64(time.Now().UnixNano())
		return NewUniformRandom(rand.NewPCG(seed, seed>>1|1)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
