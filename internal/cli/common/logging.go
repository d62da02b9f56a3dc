package common

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/viper"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures the CLI logger.
type LogOptions struct {
	Level      string // debug|info|warn|error
	Format     string // console|json
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogOptionsFrom reads the Log section shared with the service (Level,
// Encoding) and the admin.log_* keys used only by catalogctl.
func LogOptionsFrom(v *viper.Viper) LogOptions {
	format := "console"
	if strings.EqualFold(v.GetString("log.encoding"), "json") {
		format = "json"
	}
	o := LogOptions{
		Level:      v.GetString("log.level"),
		Format:     format,
		File:       v.GetString("admin.logfile"),
		MaxSizeMB:  v.GetInt("admin.logmaxsize"),
		MaxBackups: v.GetInt("admin.logmaxbackups"),
		MaxAgeDays: v.GetInt("admin.logmaxage"),
		Compress:   v.GetBool("admin.logcompress"),
	}
	if o.MaxSizeMB == 0 {
		o.MaxSizeMB = 50
	}
	return o
}

// SetupLogger configures both std log and the slog default logger. With a
// file set, output goes to a rotating lumberjack file instead of stderr.
func SetupLogger(o LogOptions) *slog.Logger {
	var w io.Writer = os.Stderr
	if strings.TrimSpace(o.File) != "" {
		w = &lumberjack.Logger{Filename: o.File, MaxSize: o.MaxSizeMB, MaxBackups: o.MaxBackups, MaxAge: o.MaxAgeDays, Compress: o.Compress}
	}
	l := newLogger(w, o)
	slog.SetDefault(l)
	if o.Format == "json" {
		log.SetFlags(0)
	} else {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	log.SetOutput(w)
	return l
}

func newLogger(w io.Writer, o LogOptions) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(o.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error", "severe":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if o.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(&countHandler{next: h})
}

// --------- counters for log levels ----------

var cntDebug, cntInfo, cntWarn, cntError atomic.Int64

type countHandler struct{ next slog.Handler }

func (c *countHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.next.Enabled(ctx, lvl)
}

func (c *countHandler) Handle(ctx context.Context, rec slog.Record) error {
	switch {
	case rec.Level >= slog.LevelError:
		cntError.Add(1)
	case rec.Level >= slog.LevelWarn:
		cntWarn.Add(1)
	case rec.Level >= slog.LevelInfo:
		cntInfo.Add(1)
	default:
		cntDebug.Add(1)
	}
	return c.next.Handle(ctx, rec)
}

func (c *countHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countHandler{next: c.next.WithAttrs(attrs)}
}
func (c *countHandler) WithGroup(name string) slog.Handler {
	return &countHandler{next: c.next.WithGroup(name)}
}

// GetLogCounters returns current log counters by level.
func GetLogCounters() map[string]int64 {
	d, i, w, e := cntDebug.Load(), cntInfo.Load(), cntWarn.Load(), cntError.Load()
	return map[string]int64{"debug": d, "info": i, "warn": w, "error": e, "total": d + i + w + e}
}
