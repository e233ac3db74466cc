package logger

import (
	"io"
	"log/slog"
	"time"
)

type Config struct {
	Debug  bool
	Output io.Writer
}

// New builds the process logger. Without Debug everything is discarded so
// the diagnostic stream carries only the contract lines.
func New(cfg Config) *slog.Logger {
	if !cfg.Debug || cfg.Output == nil {
		return Discard()
	}

	h := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
