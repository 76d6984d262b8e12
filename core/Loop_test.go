package core

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	interval time.Duration
	c        chan time.Time
	stopped  int32
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }
func (f *fakeTicker) Stop()               { atomic.StoreInt32(&f.stopped, 1) }
func (f *fakeTicker) Stopped() bool       { return atomic.LoadInt32(&f.stopped) == 1 }

// tick 只送一次，ticker 停止後 loop 不會再讀取
func (f *fakeTicker) tick() {
	select {
	case f.c <- time.Now():
	default:
	}
}

type fakeClock struct {
	mu      sync.Mutex
	created chan *fakeTicker
	all     []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{created: make(chan *fakeTicker, 16)}
}

func (c *fakeClock) NewTicker(d time.Duration) Ticker {
	t := &fakeTicker{interval: d, c: make(chan time.Time, 1)}
	c.mu.Lock()
	c.all = append(c.all, t)
	c.mu.Unlock()
	c.created <- t
	return t
}

func (c *fakeClock) next(t *testing.T) *fakeTicker {
	t.Helper()
	select {
	case ticker := <-c.created:
		return ticker
	case <-time.After(time.Second):
		t.Fatal("ticker was not created")
		return nil
	}
}

type recordingPresenter struct {
	renders chan Snapshot
	results chan Snapshot
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		renders: make(chan Snapshot, 256),
		results: make(chan Snapshot, 16),
	}
}

func (p *recordingPresenter) Render(s Snapshot)     { p.renders <- s }
func (p *recordingPresenter) ShowResult(s Snapshot) { p.results <- s }

func receive(t *testing.T, c chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s := <-c:
		return s
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
		return Snapshot{}
	}
}

func assertNothing(t *testing.T, c chan Snapshot) {
	t.Helper()
	select {
	case s := <-c:
		t.Fatalf("unexpected snapshot: %+v", s)
	case <-time.After(50 * time.Millisecond):
	}
}

type loopFixture struct {
	loop      *Loop
	clock     *fakeClock
	presenter *recordingPresenter
	done      chan struct{}
}

func startLoop(t *testing.T, duration int) *loopFixture {
	t.Helper()
	cfg := DefaultGameConfig()
	cfg.MatchDuration = duration

	clock := newFakeClock()
	presenter := newRecordingPresenter()
	loop := NewLoop(NewMatchState(cfg, FixedRandom{Value: true}), presenter, clock.NewTicker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &loopFixture{loop: loop, clock: clock, presenter: presenter, done: done}
}

func TestLoop_RunsOneMatch(t *testing.T) {
	f := startLoop(t, 2)

	f.loop.RequestStart()
	frame := f.clock.next(t)
	second := f.clock.next(t)
	assert.Equal(t, time.Second/60, frame.interval)
	assert.Equal(t, time.Second, second.interval)

	s := receive(t, f.presenter.renders)
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, "0:02", s.TimeText)

	frame.tick()
	s = receive(t, f.presenter.renders)
	assert.Equal(t, 396.5, s.Ball.X)

	// 操作與 frame 的先後順序不固定，第一次移動一定是 +9
	f.loop.Send(MoveRight)
	for i := 0; i < 5 && s.BottomPaddle.X == 362.5; i++ {
		frame.tick()
		s = receive(t, f.presenter.renders)
	}
	assert.Equal(t, 371.5, s.BottomPaddle.X)

	second.tick()
	s = receive(t, f.presenter.renders)
	assert.Equal(t, "0:01", s.TimeText)

	second.tick()
	result := receive(t, f.presenter.results)
	assert.Equal(t, PhaseEnded, result.Phase)
	assert.Equal(t, "No one wins! Score 0:0", result.Banner)

	assert.True(t, frame.Stopped())
	assert.True(t, second.Stopped())

	// 結束後的 tick 不會再被處理
	frame.tick()
	second.tick()
	assertNothing(t, f.presenter.renders)
	assertNothing(t, f.presenter.results)
}

func TestLoop_OneCountdownPerMatch(t *testing.T) {
	f := startLoop(t, 1)

	f.loop.RequestStart()
	frame := f.clock.next(t)
	second := f.clock.next(t)
	receive(t, f.presenter.renders)

	// 進行中再要求開始不會產生新的 ticker
	f.loop.RequestStart()
	frame.tick()
	receive(t, f.presenter.renders)
	select {
	case extra := <-f.clock.created:
		t.Fatalf("unexpected ticker %v", extra.interval)
	default:
	}

	second.tick()
	receive(t, f.presenter.results)

	f.loop.RequestStart()
	frame2 := f.clock.next(t)
	second2 := f.clock.next(t)
	s := receive(t, f.presenter.renders)
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, "0:01", s.TimeText)

	assert.True(t, frame.Stopped())
	assert.True(t, second.Stopped())
	assert.False(t, frame2.Stopped())
	assert.False(t, second2.Stopped())

	f.clock.mu.Lock()
	assert.Len(t, f.clock.all, 4)
	f.clock.mu.Unlock()
}

func TestLoop_StopsTickersOnCancel(t *testing.T) {
	cfg := DefaultGameConfig()
	clock := newFakeClock()
	presenter := newRecordingPresenter()
	loop := NewLoop(NewMatchState(cfg, FixedRandom{Value: true}), presenter, clock.NewTicker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	loop.RequestStart()
	frame := clock.next(t)
	second := clock.next(t)
	receive(t, presenter.renders)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	assert.True(t, frame.Stopped())
	assert.True(t, second.Stopped())
}

func TestLoop_SendDropsWhenFull(t *testing.T) {
	loop := NewLoop(NewMatchState(DefaultGameConfig(), FixedRandom{}), newRecordingPresenter(), newFakeClock().NewTicker)

	for i := 0; i < inputBufferSize+5; i++ {
		loop.Send(Release)
	}
	require.Len(t, loop.inputs, inputBufferSize)

	loop.RequestStart()
	loop.RequestStart()
	assert.Len(t, loop.starts, 1)
}
