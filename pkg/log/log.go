// Package log 基于 zerolog 的全局日志：控制台输出始终开启，
// 文件输出可选（lumberjack 按大小轮转），并带 service 字段标识本服务.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
)

const serviceName = "ecotrack"

var (
	logger   zerolog.Logger
	initOnce sync.Once
)

// Init 初始化全局 logger，重复调用只生效一次.
func Init() {
	initOnce.Do(setup)
}

// Logger 返回全局 logger，未显式 Init 时在首次取用时初始化.
func Logger() *zerolog.Logger {
	initOnce.Do(setup)

	return &logger
}

func setup() {
	cfg := configs.GetConfig()

	zerolog.SetGlobalLevel(parseLevel(cfg.Log.Level))

	logger = zerolog.New(buildOutput(cfg.Log)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	if cfg.Server.Debug {
		logger = logger.With().Caller().Stack().Logger()
	}

	log.Logger = logger
}

// parseLevel 非法级别回落到 info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, defaulting to info\n", s)

		return zerolog.InfoLevel
	}

	return lvl
}

// buildOutput 组合日志输出：stderr 控制台 + 可选轮转文件.
func buildOutput(cfg configs.LogConfig) io.Writer {
	console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.Kitchen
	})

	if !cfg.EnableFile {
		return console
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return io.MultiWriter(console, rotated)
}

// GinWriter 把 gin 的文本日志行转成对应级别的 zerolog 事件.
type GinWriter struct {
	logger *zerolog.Logger
	level  zerolog.Level
}

func NewGinWriter(logger *zerolog.Logger, level zerolog.Level) *GinWriter {
	return &GinWriter{logger: logger, level: level}
}

func (w *GinWriter) Write(p []byte) (int, error) {
	w.logger.WithLevel(w.level).Msg(strings.TrimSpace(string(p)))

	return len(p), nil
}
