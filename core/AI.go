package core

// ControlAIPaddle 讓電腦球拍朝球的水平位置移動
// 速度與剩餘距離成正比，上限為 maxSpeed，球在一個 frame 能追到的範圍內時會剛好對齊
func ControlAIPaddle(ball *Ball, paddle *Paddle, maxSpeed float64) {
	targetX := ball.X - paddle.Width/2
	paddle.DX = clamp(targetX-paddle.X, -maxSpeed, maxSpeed)
}
