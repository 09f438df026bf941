// Package logging hands out named zap loggers that share one adjustable level
// and one output.
package logging

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	output = &swapSyncer{w: zapcore.Lock(os.Stderr)}
	core   = newCore(output)
)

// swapSyncer forwards to a WriteSyncer that can be replaced while loggers
// built on top of it stay in use.
type swapSyncer struct {
	mu sync.RWMutex
	w  zapcore.WriteSyncer
}

func (s *swapSyncer) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *swapSyncer) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Sync()
}

func (s *swapSyncer) swap(w zapcore.WriteSyncer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// MustGetLogger returns a sugared logger tagged with name.
func MustGetLogger(name string) *zap.SugaredLogger {
	return zap.New(core).Named(name).Sugar()
}

// SetLevel changes the level of every logger handed out so far and later.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return errors.Wrapf(err, "invalid log level %q", name)
	}
	level.SetLevel(l)
	return nil
}

// Level returns the current level.
func Level() zapcore.Level {
	return level.Level()
}

// SetOutput redirects every logger, including ones already handed out, to w.
func SetOutput(w zapcore.WriteSyncer) {
	output.swap(w)
}

func newCore(w zapcore.WriteSyncer) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level)
}
