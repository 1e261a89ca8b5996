package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jan-bar/xiangqi/chess"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("test", nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{WinRule: chess.WinOnMoverKind}, cfg)
	assert.Equal(t, chess.WinOnMoverKind, cfg.GameOptions(nil).WinRule)
}

func TestParseFlags(t *testing.T) {
	const fen = "4k4/9/9/9/p8/R8/9/9/9/4K4 b - - 0 1"
	cfg, err := Parse("test", []string{"-win", " Capture ", "-debug", "-log", "x.log", "-fen", fen})
	require.NoError(t, err)
	assert.Equal(t, &Config{FEN: fen, WinRule: chess.WinOnKingCapture, Debug: true, LogFile: "x.log"}, cfg)

	opts := cfg.GameOptions(nil)
	assert.Equal(t, fen, opts.FEN)
	assert.Equal(t, chess.WinOnKingCapture, opts.WinRule)
	assert.Nil(t, opts.Rule)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("test", []string{"-win", "checkmate"})
	require.ErrorIs(t, err, chess.ErrUnknownWinRule)

	_, err = Parse("test", []string{"-fen", "4k4/9 w"})
	require.ErrorIs(t, err, chess.ErrInvalidFEN)

	_, err = Parse("test", []string{"-h"})
	require.ErrorIs(t, err, flag.ErrHelp)

	_, err = Parse("test", []string{"-nope"})
	require.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("XIANGQI_WIN", "capture")
	t.Setenv("XIANGQI_DEBUG", "yes")
	t.Setenv("XIANGQI_LOG", "env.log")

	cfg, err := Parse("test", nil)
	require.NoError(t, err)
	assert.Equal(t, chess.WinOnKingCapture, cfg.WinRule)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env.log", cfg.LogFile)

	// 命令行优先于环境变量
	cfg, err = Parse("test", []string{"-win", "legacy", "-debug=false"})
	require.NoError(t, err)
	assert.Equal(t, chess.WinOnMoverKind, cfg.WinRule)
	assert.False(t, cfg.Debug)

	// 无法识别的布尔值使用默认值
	t.Setenv("XIANGQI_DEBUG", "maybe")
	cfg, err = Parse("test", nil)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xiangqi.log")
	cfg := &Config{Debug: true, LogFile: path}

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Debug("debug line")
	logger.Info("info line")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "info line")

	path = filepath.Join(t.TempDir(), "prod.log")
	cfg = &Config{LogFile: path}
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"msg":"shown"`)
}
