package core

import (
	"errors"

	"github.com/gocrud/beanlife/config"
	"github.com/gocrud/beanlife/logging"
)

// Option 定义了修改 Runtime 状态的函数签名
type Option func(rt *Runtime) error

// WithLogger 设置运行时日志
func WithLogger(logger logging.Logger) Option {
	return func(rt *Runtime) error {
		if logger == nil {
			return errors.New("core: logger is nil")
		}
		rt.Logger = logger
		return nil
	}
}

// WithApplicationName 设置应用名
func WithApplicationName(name string) Option {
	return func(rt *Runtime) error {
		rt.appName = name
		return nil
	}
}

// WithEnvironment 设置运行环境
func WithEnvironment(name string) Option {
	return func(rt *Runtime) error {
		rt.environment = NewEnvironment(name)
		return nil
	}
}

// WithSettings 从配置设置应用名与环境
func WithSettings(settings config.Settings) Option {
	return func(rt *Runtime) error {
		if err := settings.Validate(); err != nil {
			return err
		}
		return rt.Apply(
			WithApplicationName(settings.App.Name),
			WithEnvironment(settings.App.Environment),
		)
	}
}
