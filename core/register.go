package core

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/logging"
)

// Register 对已构造并完成 setter 注入的 bean 执行初始化阶段，
// 并登记一个在 Stop 时执行 preDestroy 与 destroy 的钩子。
// processors 只作用于这一个 bean。
func Register[T any](rt *Runtime, name string, bean T, processors ...lifecycle.BeanPostProcessor) T {
	rt.declare(name)
	logger := rt.Logger.WithFields(logging.Field{Key: "bean", Value: name})

	logger.Debug("Initializing bean")
	bean = lifecycle.Initialize(bean, name, rt, processors...)

	rt.Lifecycle.OnStop(func(context.Context) error {
		logger.Debug("Destroying bean")
		lifecycle.Destroy(bean)
		return nil
	})
	return bean
}

// Lazy 延迟创建的 bean，首次 Get 时才构造并初始化
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	value T
	done  atomic.Bool
}

// RegisterLazy 登记名称，但推迟到首次使用时才构造与初始化
func RegisterLazy[T any](rt *Runtime, name string, build func() T, processors ...lifecycle.BeanPostProcessor) *Lazy[T] {
	rt.declare(name)
	return &Lazy[T]{
		build: func() T {
			return Register(rt, name, build(), processors...)
		},
	}
}

// Get 返回 bean，必要时先创建
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
		l.done.Store(true)
	})
	return l.value
}

// Initialized 报告 bean 是否已经创建
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}
