package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

// logLevel maps verbosity 0-4 onto slog levels
func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// setupLogging installs a text handler on stderr, stdout is reserved for results.
// Verbosity 4 adds the source location of every record.
func setupLogging(verbosity int) {
	opts := slog.HandlerOptions{
		AddSource: verbosity >= 4,
		Level:     logLevel(verbosity),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				src, _ := a.Value.Any().(*slog.Source)
				if src != nil {
					src.File = filepath.Base(src.File)
				}
			}
			return a
		}}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &opts)))
}
