package core

// Scorer 哪一方在這個 tick 得分
type Scorer int

const (
	NoScore Scorer = iota
	PlayerScored
	ComputerScored
)

type StepResult struct {
	Scored Scorer
}

func (m *MatchState) movePaddle(paddle *Paddle) {
	margin := m.cfg.Grid
	paddle.X = clamp(paddle.X+paddle.DX, margin, m.cfg.FieldWidth-paddle.Width-margin)
}

// step 推進一個 tick，只在比賽進行中呼叫
func (m *MatchState) step() StepResult {
	ControlAIPaddle(&m.Ball, &m.TopPaddle, m.cfg.TopPaddleSpeed)
	m.movePaddle(&m.TopPaddle)
	m.movePaddle(&m.BottomPaddle)

	ball := &m.Ball
	ball.X += ball.DX
	ball.Y += ball.DY

	// 左右牆壁只反轉方向，不把球推回場內
	margin := m.cfg.Grid
	if ball.X < margin || ball.X > m.cfg.FieldWidth-margin-ball.Width {
		ball.DX = -ball.DX
	}

	// 一個 tick 只處理一次球拍碰撞，上方優先
	if Collides(ball.Rect(), m.TopPaddle.Rect()) {
		ball.DY = -ball.DY
		ball.Y = m.TopPaddle.Y + m.TopPaddle.Height
	} else if Collides(ball.Rect(), m.BottomPaddle.Rect()) {
		ball.DY = -ball.DY
		ball.Y = m.BottomPaddle.Y - ball.Height
	}

	return StepResult{Scored: m.updateScores()}
}

func (m *MatchState) updateScores() Scorer {
	if m.Ball.Y < 0 {
		m.PlayerScore++
		m.resetRound()
		return PlayerScored
	}
	if m.Ball.Y > m.cfg.FieldHeight {
		m.ComputerScore++
		m.resetRound()
		return ComputerScored
	}
	return NoScore
}

// resetRound 球回到中央，球拍水平置中，重新決定發球方向
func (m *MatchState) resetRound() {
	cfg := m.cfg
	size := cfg.BallSize()

	m.Ball.X = cfg.FieldWidth/2 - size/2
	m.Ball.Y = cfg.FieldHeight/2 - size/2
	m.Ball.DY = cfg.BallSpeed
	if m.random.Bool() {
		m.Ball.DX = cfg.BallSpeed
	} else {
		m.Ball.DX = -cfg.BallSpeed
	}

	centerX := cfg.FieldWidth/2 - cfg.PaddleWidth()/2
	m.TopPaddle.X = centerX
	m.BottomPaddle.X = centerX
}
