package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ccrawford02/BucStopPong/core"
	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

const playAgainHint = "Press Enter to play again, q to quit"

// TerminalPresenter 把 800x600 的場地等比例縮放到終端機大小
type TerminalPresenter struct {
	screen tcell.Screen
}

func NewTerminalPresenter(screen tcell.Screen) *TerminalPresenter {
	return &TerminalPresenter{screen: screen}
}

func (p *TerminalPresenter) Render(s core.Snapshot) {
	p.screen.Clear()

	p.drawRect(s, s.TopPaddle, PaddleSymbol)
	p.drawRect(s, s.BottomPaddle, PaddleSymbol)
	p.drawRect(s, s.Ball, BallSymbol)

	//分數與時間
	width, _ := p.screen.Size()
	computerText := fmt.Sprintf("Computer: %d", s.ComputerScore)
	timeText := "Time: " + s.TimeText
	drawLetters(p.screen, 1, 0, fmt.Sprintf("Player: %d", s.PlayerScore))
	drawLetters(p.screen, width-len(computerText)-1, 0, computerText)
	drawLetters(p.screen, (width-len(timeText))/2, 0, timeText)

	p.screen.Show()
}

func (p *TerminalPresenter) ShowResult(s core.Snapshot) {
	p.screen.Clear()

	width, height := p.screen.Size()
	drawLetters(p.screen, (width-len(s.Banner))/2, height/2, s.Banner)
	drawLetters(p.screen, (width-len(playAgainHint))/2, height/2+2, playAgainHint)

	p.screen.Show()
}

func (p *TerminalPresenter) drawRect(s core.Snapshot, r core.Rect, ch rune) {
	width, height := p.screen.Size()

	col := scale(r.X, s.FieldWidth, width)
	row := scale(r.Y, s.FieldHeight, height)
	endCol := scale(r.X+r.Width, s.FieldWidth, width)
	endRow := scale(r.Y+r.Height, s.FieldHeight, height)

	// 縮放後至少佔一格
	if endCol <= col {
		endCol = col + 1
	}
	if endRow <= row {
		endRow = row + 1
	}

	for y := row; y < endRow; y++ {
		for x := col; x < endCol; x++ {
			p.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		}
	}
}

func scale(v, field float64, cells int) int {
	return int(v * float64(cells) / field)
}

func drawLetters(screen tcell.Screen, x, y int, word string) {
	for i, letter := range []rune(word) {
		screen.SetContent(x+i, y, letter, nil, tcell.StyleDefault)
	}
}

// InputSink 接收鍵盤轉換後的操作，core.Loop 實作此介面
type InputSink interface {
	Send(cmd core.Command)
	RequestStart()
}

type keyAction int

const (
	actionNone keyAction = iota
	actionMoveLeft
	actionMoveRight
	actionRelease
	actionStart
	actionQuit
)

func translateKey(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionMoveLeft
	case tcell.KeyRight:
		return actionMoveRight
	case tcell.KeyDown:
		return actionRelease
	case tcell.KeyEnter:
		return actionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actionMoveLeft
		case 'd', 'D':
			return actionMoveRight
		case ' ':
			return actionRelease
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// KeyboardInput 終端機收不到 key-up，按鍵超過 releaseAfter 沒有重複就送出 Release
type KeyboardInput struct {
	screen       tcell.Screen
	sink         InputSink
	releaseAfter time.Duration

	mu           sync.Mutex
	releaseTimer *time.Timer
}

func NewKeyboardInput(screen tcell.Screen, sink InputSink, releaseAfter time.Duration) *KeyboardInput {
	return &KeyboardInput{screen: screen, sink: sink, releaseAfter: releaseAfter}
}

// Listen 監聽鍵盤直到按下離開鍵或畫面關閉
func (k *KeyboardInput) Listen(ctx context.Context, quit context.CancelFunc) {
	defer k.stopRelease()

	for {
		ev := k.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventKey:
			if k.handleKey(ev) {
				quit()
				return
			}
		}
	}
}

// handleKey 回傳 true 代表要離開遊戲
func (k *KeyboardInput) handleKey(ev *tcell.EventKey) bool {
	switch translateKey(ev) {
	case actionMoveLeft:
		k.sink.Send(core.MoveLeft)
		k.armRelease()
	case actionMoveRight:
		k.sink.Send(core.MoveRight)
		k.armRelease()
	case actionRelease:
		k.stopRelease()
		k.sink.Send(core.Release)
	case actionStart:
		k.sink.RequestStart()
	case actionQuit:
		return true
	}
	return false
}

func (k *KeyboardInput) armRelease() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.releaseTimer != nil {
		k.releaseTimer.Stop()
	}
	k.releaseTimer = time.AfterFunc(k.releaseAfter, func() {
		k.sink.Send(core.Release)
	})
}

func (k *KeyboardInput) stopRelease() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.releaseTimer != nil {
		k.releaseTimer.Stop()
		k.releaseTimer = nil
	}
}
