package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
}

type loggerProperties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
}

func readLoggerProperties(path string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(path)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return loggerProperties{}, fmt.Errorf("read logger config: %w", err)
		}
	}

	return loggerProperties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
	}, nil
}

// Init 讀取 logger.properties，log 一律寫到檔案，畫面留給遊戲
func (l Logger) Init(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	l.SetOutput(&lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	})
	logrus.SetLevel(parseLevel(props.level))
	return nil
}

func (l Logger) SetOutput(w io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l Logger) Info(message string) {
	logrus.Info(message)
}

func (l Logger) Error(message string) {
	logrus.Error(message)
}

func (l Logger) Debug(message string) {
	logrus.Debug(message)
}

func (l Logger) Warn(message string) {
	logrus.Warn(message)
}

func (l Logger) Fatal(message string) {
	logrus.Fatal(message)
}
