package core

// Rect 以左上角為原點的矩形
type Rect struct {
	X, Y          float64
	Width, Height float64
}

type Paddle struct {
	X, Y          float64
	Width, Height float64
	DX            float64
}

type Ball struct {
	X, Y          float64
	Width, Height float64
	DX, DY        float64
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Collides 兩個矩形在水平與垂直方向都重疊才算碰撞
func Collides(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
