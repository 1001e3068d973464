package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewErrorLogger builds a zap logger that appends JSON records to
// <dir>/error.log. Internal faults are written here in full; callers only
// ever see the generic 500 body.
func NewErrorLogger(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging.NewErrorLogger: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(dir, "error.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging.NewErrorLogger: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(file),
		zapcore.ErrorLevel,
	)
	return zap.New(core), nil
}

// OpenAccessLog opens <dir>/access.log for appending; the HTTP request
// logger middleware streams into it.
func OpenAccessLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging.OpenAccessLog: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "access.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
