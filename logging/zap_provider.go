package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OutputFormat 控制台输出格式
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ConsoleLoggerOptions 控制台日志选项
type ConsoleLoggerOptions struct {
	IncludeTimestamp bool
	TimestampFormat  string
	ColorOutput      bool
	Format           OutputFormat
	Output           io.Writer
}

// ZapLoggerProvider 基于 zap 的日志提供者
// 所有由它创建的 Logger 共享同一个 zapcore.Core 与动态级别
type ZapLoggerProvider struct {
	base  *zap.Logger
	level zap.AtomicLevel
	mu    sync.RWMutex
}

// NewConsoleLoggerProvider 创建写入 io.Writer 的 zap 提供者
func NewConsoleLoggerProvider(options ConsoleLoggerOptions) *ZapLoggerProvider {
	if options.Output == nil {
		options.Output = os.Stdout
	}
	level := zap.NewAtomicLevelAt(toZapLevel(LogLevelInfo))
	core := zapcore.NewCore(newEncoder(options), zapcore.AddSync(options.Output), level)
	return NewZapLoggerProvider(core, level)
}

// NewZapLoggerProvider 使用现成的 zapcore.Core 创建提供者
// level 应当是 core 所使用的级别开关，SetMinimumLevel 会直接修改它
func NewZapLoggerProvider(core zapcore.Core, level zap.AtomicLevel) *ZapLoggerProvider {
	return &ZapLoggerProvider{
		base:  zap.New(core),
		level: level,
	}
}

func (p *ZapLoggerProvider) CreateLogger(category string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zapLogger{provider: p, base: p.named(category)}
}

func (p *ZapLoggerProvider) SetMinimumLevel(level LogLevel) {
	p.level.SetLevel(toZapLevel(level))
}

func (p *ZapLoggerProvider) named(category string) *zap.Logger {
	if category == "" {
		return p.base
	}
	return p.base.Named(category)
}

func newEncoder(options ConsoleLoggerOptions) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.NameKey = "category"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if options.IncludeTimestamp {
		layout := options.TimestampFormat
		if layout == "" {
			layout = "2006-01-02 15:04:05"
		}
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(layout)
	} else {
		cfg.TimeKey = zapcore.OmitKey
	}

	if options.Format == FormatJSON {
		return zapcore.NewJSONEncoder(cfg)
	}
	if options.ColorOutput {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(cfg)
}

// zapLogger Logger 的 zap 实现
type zapLogger struct {
	provider *ZapLoggerProvider
	base     *zap.Logger
	fields   []Field
}

func (l *zapLogger) Trace(msg string, fields ...Field) { l.Log(LogLevelTrace, msg, fields...) }
func (l *zapLogger) Debug(msg string, fields ...Field) { l.Log(LogLevelDebug, msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.Log(LogLevelInfo, msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.Log(LogLevelWarn, msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.Log(LogLevelError, msg, fields...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.Log(LogLevelFatal, msg, fields...) }

func (l *zapLogger) Log(level LogLevel, msg string, fields ...Field) {
	ce := l.base.Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}
	ce.Write(toZapFields(mergeFields(l.fields, fields))...)
}

func (l *zapLogger) WithFields(fields ...Field) Logger {
	return &zapLogger{
		provider: l.provider,
		base:     l.base,
		fields:   mergeFields(l.fields, fields),
	}
}

func (l *zapLogger) WithCategory(category string) Logger {
	return &zapLogger{
		provider: l.provider,
		base:     l.provider.named(category),
		fields:   l.fields,
	}
}

// toZapLevel zap 没有 Trace 级别，按 Debug 处理
func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelTrace, LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
