package core

import (
	"context"
	"fmt"
	"time"

	"github.com/ccrawford02/BucStopPong/logger"
)

// Presenter 負責把快照畫到畫面上
type Presenter interface {
	Render(s Snapshot)
	ShowResult(s Snapshot)
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

const inputBufferSize = 32

// Loop 唯一會修改 MatchState 的 goroutine
// frame 與倒數兩個 ticker 只在比賽進行中存在，比賽結束時在同一輪 select 中一起停止
type Loop struct {
	match     *MatchState
	presenter Presenter
	newTicker TickerFactory

	frameInterval  time.Duration
	secondInterval time.Duration

	inputs chan Command
	starts chan struct{}

	frameTicker  Ticker
	secondTicker Ticker
}

func NewLoop(match *MatchState, presenter Presenter, newTicker TickerFactory) *Loop {
	if newTicker == nil {
		newTicker = NewTimeTicker
	}

	return &Loop{
		match:          match,
		presenter:      presenter,
		newTicker:      newTicker,
		frameInterval:  time.Second / time.Duration(match.Config().FrameRate),
		secondInterval: time.Second,
		inputs:         make(chan Command, inputBufferSize),
		starts:         make(chan struct{}, 1),
	}
}

// RequestStart 要求開始新的一場，比賽進行中會被忽略
func (l *Loop) RequestStart() {
	select {
	case l.starts <- struct{}{}:
	default:
	}
}

// Send 轉交玩家操作，buffer 滿了就丟掉
func (l *Loop) Send(cmd Command) {
	select {
	case l.inputs <- cmd:
	default:
		logger.Log.Warn(fmt.Sprintf(logger.InputDroppedMsg, cmd))
	}
}

func (l *Loop) Run(ctx context.Context) {
	defer l.stopTickers()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info(logger.LoopStoppedMsg)
			return

		case <-l.starts:
			l.startMatch()

		case cmd := <-l.inputs:
			l.match.HandleInput(cmd)

		case <-l.frameC():
			l.match.FrameTick()
			l.presenter.Render(l.match.Snapshot())

		case <-l.secondC():
			if l.match.SecondTick() {
				l.stopTickers()
				l.presenter.ShowResult(l.match.Snapshot())
				continue
			}
			l.presenter.Render(l.match.Snapshot())
		}
	}
}

func (l *Loop) startMatch() {
	if !l.match.Start() {
		return
	}

	l.stopTickers()
	l.frameTicker = l.newTicker(l.frameInterval)
	l.secondTicker = l.newTicker(l.secondInterval)
	l.presenter.Render(l.match.Snapshot())
}

func (l *Loop) stopTickers() {
	if l.frameTicker != nil {
		l.frameTicker.Stop()
		l.frameTicker = nil
	}
	if l.secondTicker != nil {
		l.secondTicker.Stop()
		l.secondTicker = nil
	}
}

// nil channel 在 select 中永遠不會被選到
func (l *Loop) frameC() <-chan time.Time {
	if l.frameTicker == nil {
		return nil
	}
	return l.frameTicker.C()
}

func (l *Loop) secondC() <-chan time.Time {
	if l.secondTicker == nil {
		return nil
	}
	return l.secondTicker.C()
}
