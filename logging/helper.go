package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewLogger 创建一个默认的控制台 Logger（便于测试使用）
func NewLogger() Logger {
	builder := NewLoggingBuilder()
	builder.AddConsole()
	factory := builder.Build()
	return factory.CreateLogger("default")
}

// NewObservedLogger 创建把日志记录在内存中的 Logger，用于断言输出内容
// 与 NewLogger 一样属于测试辅助，其它包的测试也依赖它，所以放在非测试文件中
func NewObservedLogger(level LogLevel) (Logger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core, logs := observer.New(atomic)

	factory := NewLoggingBuilder().
		SetMinimumLevel(level).
		AddProvider(NewZapLoggerProvider(core, atomic)).
		Build()
	return factory.CreateLogger("test"), logs
}
