// Package audit is the append-only, line oriented audit sink. Each event is
// written as "<timestamp> <message>". Writes are best-effort.
package audit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ruralpay/hacklab/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Sink interface {
	Log(msg string)
}

type Logger struct {
	path   string
	file   *os.File
	logger *zap.Logger
}

func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(models.TimestampLayout))
		},
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.DebugLevel)

	return &Logger{
		path:   path,
		file:   f,
		logger: zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard))),
	}, nil
}

func (a *Logger) Log(msg string) {
	a.logger.Info(msg)
}

func (a *Logger) Path() string {
	return a.path
}

func (a *Logger) Close() error {
	return a.file.Close()
}

// Tail returns up to limit of the most recent lines, newest first. The window
// is taken over the raw newline split, so the empty element after the final
// terminator occupies one slot.
func Tail(path string, limit int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(data), "\n")
	if len(parts) > limit {
		parts = parts[len(parts)-limit:]
	}

	lines := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			lines = append(lines, parts[i])
		}
	}
	return lines, nil
}
