package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	logDir      = "logs"
	logFileName = constants.AppName + ".log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points logrus at the debug log file, or discards output when debug is off
// The terminal owns stdout and stderr while the game runs, so logs never go there
// Returns the open file for the caller to close, nil when logging is disabled
func setupLogging(debug bool) *os.File {
	if !debug {
		logrus.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate oversized log
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", constants.AppName, time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}

	logrus.SetOutput(logFile)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logFile
}
