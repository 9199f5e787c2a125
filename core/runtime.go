package core

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/logging"
)

var _ lifecycle.ApplicationContext = (*Runtime)(nil)

// Runtime 是应用的状态容器
// 它记录已登记的 bean 名称与销毁钩子，并作为 ApplicationContext 交给 bean；
// 它不负责创建或解析 bean，bean 的构造与注入由引导代码显式完成
type Runtime struct {
	// Lifecycle 生命周期钩子
	Lifecycle *LifecycleEvents

	// Logger 运行时日志
	Logger logging.Logger

	id          string
	appName     string
	environment Environment
	beans       []string
	mu          sync.RWMutex

	// shutdownCh 用于通知应用退出
	shutdownCh chan struct{}
	closeOnce  sync.Once
}

// NewRuntime 创建一个新的运行时实例
func NewRuntime() *Runtime {
	return &Runtime{
		Lifecycle:   NewLifecycle(),
		Logger:      logging.Nop(),
		id:          uuid.NewString(),
		appName:     "beanlife",
		environment: NewEnvironment("development"),
		shutdownCh:  make(chan struct{}),
	}
}

// Apply 应用多个 Option
func (rt *Runtime) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(rt); err != nil {
			return err
		}
	}
	return nil
}

// ID 返回上下文唯一标识
func (rt *Runtime) ID() string { return rt.id }

// ApplicationName 返回应用名
func (rt *Runtime) ApplicationName() string { return rt.appName }

// Environment 返回运行环境
func (rt *Runtime) Environment() Environment { return rt.environment }

// EnvironmentName 返回运行环境名
func (rt *Runtime) EnvironmentName() string { return rt.environment.Name() }

// ContainsBean 报告名称是否已登记（包括尚未创建的延迟 bean）
func (rt *Runtime) ContainsBean(name string) bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return slices.Contains(rt.beans, name)
}

// BeanNames 按登记顺序返回 bean 名称
func (rt *Runtime) BeanNames() []string {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return slices.Clone(rt.beans)
}

func (rt *Runtime) declare(name string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !slices.Contains(rt.beans, name) {
		rt.beans = append(rt.beans, name)
	}
}

// Start 执行启动钩子
func (rt *Runtime) Start(ctx context.Context) error {
	rt.Logger.Info("Starting application",
		logging.Field{Key: "id", Value: rt.id},
		logging.Field{Key: "environment", Value: rt.environment.Name()})
	return rt.Lifecycle.Start(ctx)
}

// Stop 倒序执行停止钩子，单个钩子失败不会中断其余钩子
func (rt *Runtime) Stop(ctx context.Context) error {
	rt.Logger.Info("Stopping application")
	err := rt.Lifecycle.Stop(ctx)
	if err != nil {
		rt.Logger.Error("Stop hooks failed", logging.Field{Key: "error", Value: err.Error()})
	}
	return err
}

// Shutdown 请求应用退出
func (rt *Runtime) Shutdown() {
	rt.closeOnce.Do(func() { close(rt.shutdownCh) })
}

// Done 返回一个通道，当应用需要退出时该通道会关闭
func (rt *Runtime) Done() <-chan struct{} {
	return rt.shutdownCh
}
