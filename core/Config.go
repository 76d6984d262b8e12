package core

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultConfigName = "pong"

// GameConfig 遊戲參數，預設值與畫布 800x600、格子 15 一致
type GameConfig struct {
	FieldWidth        float64
	FieldHeight       float64
	Grid              float64
	TopPaddleSpeed    float64 // 電腦球拍最大速度
	BottomPaddleSpeed float64 // 玩家球拍速度
	BallSpeed         float64
	MatchDuration     int // 秒
	FrameRate         int
	KeyReleaseMs      int // 終端機沒有 key-up 事件，超過這個時間沒有重複按鍵就視為放開
	RandomSeed        int64
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		FieldWidth:        800,
		FieldHeight:       600,
		Grid:              15,
		TopPaddleSpeed:    3.6,
		BottomPaddleSpeed: 9,
		BallSpeed:         4,
		MatchDuration:     180,
		FrameRate:         60,
		KeyReleaseMs:      250,
	}
}

func (c GameConfig) PaddleWidth() float64 {
	return c.Grid * 5
}

func (c GameConfig) PaddleHeight() float64 {
	return c.Grid
}

func (c GameConfig) BallSize() float64 {
	return c.Grid
}

func setGameDefaults(v *viper.Viper) {
	d := DefaultGameConfig()
	v.SetDefault("FIELD_WIDTH", d.FieldWidth)
	v.SetDefault("FIELD_HEIGHT", d.FieldHeight)
	v.SetDefault("GRID", d.Grid)
	v.SetDefault("TOP_PADDLE_SPEED", d.TopPaddleSpeed)
	v.SetDefault("BOTTOM_PADDLE_SPEED", d.BottomPaddleSpeed)
	v.SetDefault("BALL_SPEED", d.BallSpeed)
	v.SetDefault("MATCH_DURATION", d.MatchDuration)
	v.SetDefault("FRAME_RATE", d.FrameRate)
	v.SetDefault("KEY_RELEASE_MS", d.KeyReleaseMs)
	v.SetDefault("RANDOM_SEED", d.RandomSeed)
}

// ReadGameProperties 讀取 <path>/<name>.properties，檔案不存在時使用預設值
func ReadGameProperties(path, name string) (GameConfig, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("properties")
	v.AddConfigPath(path)
	setGameDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return GameConfig{}, fmt.Errorf("read game config %s: %w", name, err)
		}
	}

	return gameConfigFrom(v)
}

func gameConfigFrom(v *viper.Viper) (GameConfig, error) {
	cfg := GameConfig{
		FieldWidth:        cast.ToFloat64(v.Get("FIELD_WIDTH")),
		FieldHeight:       cast.ToFloat64(v.Get("FIELD_HEIGHT")),
		Grid:              cast.ToFloat64(v.Get("GRID")),
		TopPaddleSpeed:    cast.ToFloat64(v.Get("TOP_PADDLE_SPEED")),
		BottomPaddleSpeed: cast.ToFloat64(v.Get("BOTTOM_PADDLE_SPEED")),
		BallSpeed:         cast.ToFloat64(v.Get("BALL_SPEED")),
		MatchDuration:     cast.ToInt(v.Get("MATCH_DURATION")),
		FrameRate:         cast.ToInt(v.Get("FRAME_RATE")),
		KeyReleaseMs:      cast.ToInt(v.Get("KEY_RELEASE_MS")),
		RandomSeed:        cast.ToInt64(v.Get("RANDOM_SEED")),
	}

	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

func (c GameConfig) Validate() error {
	if c.Grid <= 0 {
		return fmt.Errorf("invalid GRID: %v", c.Grid)
	}
	if c.FieldWidth < c.PaddleWidth()+2*c.Grid {
		return fmt.Errorf("FIELD_WIDTH %v too small for paddle width %v", c.FieldWidth, c.PaddleWidth())
	}
	if c.FieldHeight <= c.Grid*4 {
		return fmt.Errorf("FIELD_HEIGHT %v too small", c.FieldHeight)
	}
	if c.MatchDuration <= 0 {
		return fmt.Errorf("invalid MATCH_DURATION: %d", c.MatchDuration)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("invalid FRAME_RATE: %d", c.FrameRate)
	}
	if c.TopPaddleSpeed < 0 || c.BottomPaddleSpeed < 0 || c.BallSpeed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	return nil
}
