package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"go.uber.org/zap"
)

// profileSession owns an active CPU profile.
type profileSession struct {
	path    string
	file    *os.File
	started time.Time
	log     *zap.Logger
	once    sync.Once
}

// startCPUProfile begins writing a CPU profile of the session to path.
func startCPUProfile(path string, log *zap.Logger) (*profileSession, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	log.Info("cpu profile enabled", zap.String("path", path))
	return &profileSession{path: path, file: f, started: time.Now(), log: log}, nil
}

// Stop flushes the profile. Later calls do nothing.
func (p *profileSession) Stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			p.log.Warn("closing cpu profile", zap.String("path", p.path), zap.Error(err))
			return
		}
		p.log.Info("cpu profile written",
			zap.String("path", p.path),
			zap.Duration("duration", time.Since(p.started)))
	})
}
