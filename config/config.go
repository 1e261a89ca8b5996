// Package config 命令行参数和日志,命令行没有给出时从环境变量读取默认值
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jan-bar/xiangqi/chess"
)

const envPrefix = "XIANGQI_"

type Config struct {
	FEN     string        // 开局局面,空表示标准开局
	WinRule chess.WinRule // 胜负规则
	Debug   bool          // 输出调试日志
	LogFile string        // 日志文件,空表示标准错误输出
}

// Parse 解析命令行参数,args 不包含程序名
func Parse(name string, args []string) (*Config, error) {
	var (
		fs  = flag.NewFlagSet(name, flag.ContinueOnError)
		fen = fs.String("fen", getenv("FEN", ""), "start position in FEN, empty for the standard opening")
		win = fs.String("win", getenv("WIN", "legacy"), "win rule: legacy (never ends the game) or capture (king capture wins)")
		dbg = fs.Bool("debug", getenb("DEBUG", false), "enable debug logging")
		log = fs.String("log", getenv("LOG", ""), "log file path, empty for stderr")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rule, err := chess.ParseWinRule(strings.ToLower(strings.TrimSpace(*win)))
	if err != nil {
		return nil, err
	}
	if *fen != "" {
		if _, _, err = chess.Decode(*fen); err != nil {
			return nil, fmt.Errorf("-fen: %w", err)
		}
	}

	return &Config{FEN: *fen, WinRule: rule, Debug: *dbg, LogFile: *log}, nil
}

// GameOptions 转换为创建对局的参数
func (c *Config) GameOptions(logger *zap.Logger) chess.Options {
	return chess.Options{FEN: c.FEN, WinRule: c.WinRule, Logger: logger}
}

// NewLogger 调试模式用开发配置,否则用生产配置
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Debug {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
		zc.ErrorOutputPaths = []string{c.LogFile}
	}
	return zc.Build()
}

func getenv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
