package config

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger instala um logger JSON em stdout como default do slog.
func InitLogger(level slog.Level) *slog.Logger {
	return initLogger(os.Stdout, level)
}

func initLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		// horário sempre em UTC, para casar com os timestamps dos eventos
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.TimeValue(a.Value.Time().UTC())
			}
			return a
		},
	})
	l := slog.New(h).With("app", "calculadora-pj")
	slog.SetDefault(l) // permite usar slog.Info/Error globalmente
	return l
}
