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
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	JSON  bool   `yaml:"json,omitempty"`
	Level string `yaml:"level,omitempty"`
	// PionLevel controls the verbosity of the media stack, defaults to warn
	PionLevel string `yaml:"pion_level,omitempty"`
}

// Logger is the structured logger used across the client. Keys and values alternate.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, err error, keysAndValues ...interface{})
	Errorw(msg string, err error, keysAndValues ...interface{})
	WithValues(keysAndValues ...interface{}) Logger
	WithName(name string) Logger
	// WithCallDepth skips extra frames when reporting the caller
	WithCallDepth(depth int) Logger
}

var (
	lock          sync.RWMutex
	defaultLogger Logger = NewZapLogger(zap.NewNop())
)

// InitFromConfig replaces the default logger with one built from conf
func InitFromConfig(conf Config, name string) error {
	zl, err := buildZap(conf)
	if err != nil {
		return err
	}
	l := NewZapLogger(zl)
	if name != "" {
		l = l.WithName(name)
	}
	SetLogger(l)
	setPionLevel(conf.PionLevel)
	return nil
}

func GetLogger() Logger {
	lock.RLock()
	defer lock.RUnlock()
	return defaultLogger
}

func SetLogger(l Logger) {
	lock.Lock()
	defaultLogger = l
	lock.Unlock()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	GetLogger().WithCallDepth(1).Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetLogger().WithCallDepth(1).Infow(msg, keysAndValues...)
}

func Warnw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().WithCallDepth(1).Warnw(msg, err, keysAndValues...)
}

func Errorw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().WithCallDepth(1).Errorw(msg, err, keysAndValues...)
}

func buildZap(conf Config) (*zap.Logger, error) {
	var zc zap.Config
	if conf.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if conf.Level != "" {
		if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
			return nil, err
		}
	}
	zc.Level = level
	return zc.Build(zap.AddCallerSkip(1))
}

type zapLogger struct {
	zap *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{zap: l.Sugar()}
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.zap.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.zap.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warnw(msg string, err error, keysAndValues ...interface{}) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	l.zap.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Errorw(msg string, err error, keysAndValues ...interface{}) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	l.zap.Errorw(msg, keysAndValues...)
}

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return &zapLogger{zap: l.zap.With(keysAndValues...)}
}

func (l *zapLogger) WithName(name string) Logger {
	return &zapLogger{zap: l.zap.Named(name)}
}

func (l *zapLogger) WithCallDepth(depth int) Logger {
	return &zapLogger{zap: l.zap.WithOptions(zap.AddCallerSkip(depth))}
}
