// Package logging builds the zap logger used by the qimen CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/qimen/internal/config"
)

// New returns a production logger, or a development logger when
// cfg.Development is set, at the configured level. Output goes to stderr
// so chart documents on stdout stay clean.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
