// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"fmt"

	"github.com/pion/logging"
	"go.uber.org/atomic"
	"go.uber.org/zap/zapcore"
)

var pionLevel = atomic.NewInt32(int32(zapcore.WarnLevel))

func setPionLevel(level string) {
	lvl := zapcore.WarnLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = zapcore.WarnLevel
		}
	}
	pionLevel.Store(int32(lvl))
}

// PionLoggerFactory routes pion's leveled logging into the default logger
func PionLoggerFactory() logging.LoggerFactory {
	return &loggerFactory{}
}

// implements logging.LoggerFactory
type loggerFactory struct{}

func (f *loggerFactory) NewLogger(scope string) logging.LeveledLogger {
	return &logAdapter{
		logger: GetLogger().WithName(scope).WithCallDepth(1),
	}
}

// implements logging.LeveledLogger
type logAdapter struct {
	logger Logger
}

func (l *logAdapter) enabled(level zapcore.Level) bool {
	return zapcore.Level(pionLevel.Load()) <= level
}

func (l *logAdapter) Trace(msg string) {
	// ignore trace
}

func (l *logAdapter) Tracef(format string, args ...interface{}) {
	// ignore trace
}

func (l *logAdapter) Debug(msg string) {
	if l.enabled(zapcore.DebugLevel) {
		l.logger.Debugw(msg)
	}
}

func (l *logAdapter) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Info(msg string) {
	if l.enabled(zapcore.InfoLevel) {
		l.logger.Infow(msg)
	}
}

func (l *logAdapter) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Warn(msg string) {
	if l.enabled(zapcore.WarnLevel) {
		l.logger.Warnw(msg, nil)
	}
}

func (l *logAdapter) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Error(msg string) {
	if l.enabled(zapcore.ErrorLevel) {
		l.logger.Errorw(msg, nil)
	}
}

func (l *logAdapter) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
