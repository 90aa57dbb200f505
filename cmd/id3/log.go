package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileEnv = "LOG_FILE"

/*
newLogger returns a logger writing to stderr at info level, or debug
level when verbose. If logFile is not empty, entries are also appended
to it as JSON.
*/
func newLogger(verbose bool, logFile string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if verbose {
		lvl = zapcore.DebugLevel
	}
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = ""
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), lvl)
	if logFile == "" {
		return zap.New(consoleCore), nil
	}
	err := os.MkdirAll(filepath.Dir(logFile), 0o755)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(f), lvl)
	return zap.New(zapcore.NewTee(fileCore, consoleCore)), nil
}
