package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

// Keys of the fields written on every entry, and of the fields the pplog
// command knows how to render.
const (
	CallstackKey = "callstack"
	ComponentKey = "component"
	ErrorKey     = "error"
	FileKey      = "file"
	HostnameKey  = "hostname"
	LevelKey     = "level"
	MessageKey   = "message"
	RequestIDKey = "requestId"
	ServiceKey   = "service"
	TimeKey      = "time"
)

// timestampLayout is ISO8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

var globalLogger = New("q-server")

// SetGlobalLogger replaces the logger returned by Global and From.
func SetGlobalLogger(l *Logger) {
	globalLogger = l
}

// Global returns the process logger.
func Global() *Logger {
	return globalLogger
}

// A Logger writes leveled JSON entries. Loggers derived with With share the
// level of their parent.
type Logger struct {
	sugared *zap.SugaredLogger
	level   zap.AtomicLevel
}

// New returns a logger writing to stdout at InfoLevel. Every entry carries
// serviceName under "service" and the host name under "hostname".
func New(serviceName string) *Logger {
	return NewWithOutput(serviceName, Lock(os.Stdout))
}

// NewWithOutput is New writing to writer.
func NewWithOutput(serviceName string, writer WriteSyncer) *Logger {
	level := zap.NewAtomicLevelAt(InfoLevel)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), writer, level)
	logger := zap.New(core,
		zap.Fields(zap.String(ServiceKey, serviceName), zap.String(HostnameKey, hostname())),
		zap.AddStacktrace(FatalLevel),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	return &Logger{sugared: logger.Sugar(), level: level}
}

// NewNop returns a logger that drops every entry.
func NewNop() *Logger {
	return &Logger{sugared: zap.NewNop().Sugar(), level: zap.NewAtomicLevelAt(FatalLevel)}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     MessageKey,
		LevelKey:       LevelKey,
		NameKey:        "logger",
		TimeKey:        TimeKey,
		StacktraceKey:  CallstackKey,
		CallerKey:      FileKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoder(encodeUTC),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func encodeUTC(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(timestampLayout))
}

// hostname prefers $HOSTNAME, which is the pod name under kubernetes.
func hostname() string {
	if h := os.Getenv("HOSTNAME"); h != "" {
		return h
	}
	h, _ := os.Hostname()
	return h
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(text string) (Level, error) {
	var level Level
	err := level.UnmarshalText([]byte(text))
	return level, err
}

// SetLevel changes the level of l and of every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

// DebugEnabled reports whether debug entries are written.
func (l *Logger) DebugEnabled() bool {
	return l.level.Enabled(DebugLevel)
}

// With returns a logger adding the key-value pairs in fields to every entry.
func (l *Logger) With(fields ...interface{}) *Logger {
	if len(fields) == 0 {
		return l
	}
	return &Logger{sugared: l.sugared.With(fields...), level: l.level}
}

// Flush writes buffered entries.
func (l *Logger) Flush() {
	_ = l.sugared.Sync()
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.sugared.Debugw(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.sugared.Infow(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.sugared.Warnw(msg, fields...)
}

// Error logs msg with err under "error".
func (l *Logger) Error(err error, msg string, fields ...interface{}) {
	l.sugared.Errorw(msg, append(fields, ErrorKey, err)...)
}

// Errorln logs args joined by spaces as the message. It is the error sink
// of a Gate, so args are never read as key-value pairs.
func (l *Logger) Errorln(args ...interface{}) {
	l.sugared.Errorln(args...)
}

// Fatal is Error followed by os.Exit(1).
func (l *Logger) Fatal(err error, msg string, fields ...interface{}) {
	l.sugared.Fatalw(msg, append(fields, ErrorKey, err)...)
}
