package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ccrawford02/BucStopPong/core"
	"github.com/ccrawford02/BucStopPong/logger"
	"github.com/gdamore/tcell"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := core.ReadGameProperties("./", core.DefaultConfigName)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ConfigLoadFailMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.FieldWidth, cfg.FieldHeight, cfg.MatchDuration, cfg.FrameRate))

	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	start(cfg, screen)
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// start 開啟遊戲迴圈，程式啟動時自動開始第一場比賽
func start(cfg core.GameConfig, screen tcell.Screen) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	match := core.NewMatchState(cfg, core.NewMathRandom(cfg.RandomSeed))
	loop := core.NewLoop(match, NewTerminalPresenter(screen), core.NewTimeTicker)
	input := NewKeyboardInput(screen, loop, time.Duration(cfg.KeyReleaseMs)*time.Millisecond)

	go input.Listen(ctx, cancel)

	loop.RequestStart()
	loop.Run(ctx)
}
