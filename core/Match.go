package core

import (
	"fmt"

	"github.com/ccrawford02/BucStopPong/logger"
	"github.com/google/uuid"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Command 玩家球拍的操作
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	Release
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Release:
		return "Release"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// MatchState 一場比賽的全部狀態，只能由單一 goroutine 修改
type MatchState struct {
	MatchId       string
	PlayerScore   int
	ComputerScore int
	RemainingTime int

	TopPaddle    Paddle // 電腦
	BottomPaddle Paddle // 玩家
	Ball         Ball

	phase  Phase
	cfg    GameConfig
	random RandomSource
}

func NewMatchState(cfg GameConfig, random RandomSource) *MatchState {
	if random == nil {
		random = NewMathRandom(cfg.RandomSeed)
	}

	paddleWidth := cfg.PaddleWidth()
	paddleHeight := cfg.PaddleHeight()
	size := cfg.BallSize()
	centerX := cfg.FieldWidth/2 - paddleWidth/2

	return &MatchState{
		RemainingTime: cfg.MatchDuration,
		TopPaddle: Paddle{
			X: centerX, Y: cfg.Grid * 2,
			Width: paddleWidth, Height: paddleHeight,
		},
		BottomPaddle: Paddle{
			X: centerX, Y: cfg.FieldHeight - cfg.Grid*3,
			Width: paddleWidth, Height: paddleHeight,
		},
		Ball: Ball{
			X: cfg.FieldWidth/2 - size/2, Y: cfg.FieldHeight/2 - size/2,
			Width: size, Height: size,
			DX: -cfg.BallSpeed, DY: cfg.BallSpeed,
		},
		phase:  PhaseIdle,
		cfg:    cfg,
		random: random,
	}
}

func (m *MatchState) Phase() Phase {
	return m.phase
}

func (m *MatchState) Running() bool {
	return m.phase == PhaseRunning
}

func (m *MatchState) Config() GameConfig {
	return m.cfg
}

// Start 從 Idle 或 Ended 開始新的一場，進行中呼叫則不做任何事
func (m *MatchState) Start() bool {
	if m.phase == PhaseRunning {
		return false
	}

	m.MatchId = uuid.NewString()
	m.PlayerScore = 0
	m.ComputerScore = 0
	m.RemainingTime = m.cfg.MatchDuration
	m.TopPaddle.DX = 0
	m.BottomPaddle.DX = 0
	m.resetRound()
	m.phase = PhaseRunning

	logger.Log.Info(fmt.Sprintf(logger.MatchStartMsg, m.MatchId, m.RemainingTime))
	return true
}

// FrameTick 每個 frame 呼叫一次
func (m *MatchState) FrameTick() StepResult {
	if m.phase != PhaseRunning {
		return StepResult{}
	}

	result := m.step()
	switch result.Scored {
	case PlayerScored:
		logger.Log.Debug(fmt.Sprintf(logger.PlayerScoredMsg, m.MatchId, m.PlayerScore, m.ComputerScore))
	case ComputerScored:
		logger.Log.Debug(fmt.Sprintf(logger.ComputerScoredMsg, m.MatchId, m.PlayerScore, m.ComputerScore))
	}
	return result
}

// SecondTick 倒數一秒，時間到就結束比賽；回傳這次是否結束了比賽
func (m *MatchState) SecondTick() bool {
	if m.phase != PhaseRunning {
		return false
	}

	m.RemainingTime--
	if m.RemainingTime <= 0 {
		m.RemainingTime = 0
		m.End()
		return true
	}
	return false
}

// End 結束比賽，兩邊球拍速度歸零
func (m *MatchState) End() {
	if m.phase != PhaseRunning {
		return
	}

	m.phase = PhaseEnded
	m.TopPaddle.DX = 0
	m.BottomPaddle.DX = 0

	logger.Log.Info(fmt.Sprintf(logger.MatchOverMsg, m.MatchId,
		Winner(m.PlayerScore, m.ComputerScore), m.PlayerScore, m.ComputerScore))
}

// HandleInput 移動只在比賽進行中有效，放開則隨時歸零
func (m *MatchState) HandleInput(cmd Command) {
	switch cmd {
	case MoveLeft:
		if m.phase == PhaseRunning {
			m.BottomPaddle.DX = -m.cfg.BottomPaddleSpeed
		}
	case MoveRight:
		if m.phase == PhaseRunning {
			m.BottomPaddle.DX = m.cfg.BottomPaddleSpeed
		}
	case Release:
		m.BottomPaddle.DX = 0
	}
}

func Winner(playerScore, computerScore int) string {
	if playerScore > computerScore {
		return "Player"
	}
	if computerScore > playerScore {
		return "Computer"
	}
	return "No one"
}

// FormatTime 轉成 M:SS
func FormatTime(totalTime int) string {
	if totalTime < 0 {
		totalTime = 0
	}
	return fmt.Sprintf("%d:%02d", totalTime/60, totalTime%60)
}

// Snapshot 給畫面用的唯讀資料
type Snapshot struct {
	MatchId       string
	Phase         Phase
	FieldWidth    float64
	FieldHeight   float64
	TopPaddle     Rect
	BottomPaddle  Rect
	Ball          Rect
	PlayerScore   int
	ComputerScore int
	RemainingTime int
	TimeText      string
	Winner        string // 只有比賽結束才有值
	Banner        string
}

func (m *MatchState) Snapshot() Snapshot {
	s := Snapshot{
		MatchId:       m.MatchId,
		Phase:         m.phase,
		FieldWidth:    m.cfg.FieldWidth,
		FieldHeight:   m.cfg.FieldHeight,
		TopPaddle:     m.TopPaddle.Rect(),
		BottomPaddle:  m.BottomPaddle.Rect(),
		Ball:          m.Ball.Rect(),
		PlayerScore:   m.PlayerScore,
		ComputerScore: m.ComputerScore,
		RemainingTime: m.RemainingTime,
		TimeText:      FormatTime(m.RemainingTime),
	}

	if m.phase == PhaseEnded {
		s.Winner = Winner(m.PlayerScore, m.ComputerScore)
		s.Banner = fmt.Sprintf("%s wins! Score %d:%d", s.Winner, m.PlayerScore, m.ComputerScore)
	}
	return s
}
