package core

import (
	"math/rand"
	"sync"
)

// RandomSource 決定發球的水平方向
type RandomSource interface {
	Bool() bool
}

type MathRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMathRandom(seed int64) *MathRandom {
	return &MathRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (m *MathRandom) Bool() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rnd.Float64() < 0.5
}

// FixedRandom 固定回傳 Value，測試時用來決定發球方向
type FixedRandom struct {
	Value bool
}

func (f FixedRandom) Bool() bool {
	return f.Value
}
