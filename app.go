package beanlife

import (
	"context"

	"github.com/gocrud/beanlife/config"
	"github.com/gocrud/beanlife/controllers"
	"github.com/gocrud/beanlife/core"
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/logging"
	"github.com/gocrud/beanlife/services"
)

// EnvironmentControllerName 环境控制器的注册名
const EnvironmentControllerName = "environmentController"

// Application 引导完成的应用
type Application struct {
	Runtime  *core.Runtime
	Recorder *lifecycle.Recorder
	Settings config.Settings

	controller  *controllers.BeanLifeCycleController
	environment *core.Lazy[*controllers.EnvironmentController]
}

// New 引导应用
// 生命周期控制器立即经历 1-10 阶段；环境控制器延迟到第一次使用时创建
func New(settings config.Settings, logger logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	rt := core.NewRuntime()
	if err := rt.Apply(core.WithLogger(logger), core.WithSettings(settings)); err != nil {
		return nil, err
	}

	recorder := lifecycle.NewRecorder(logger.WithCategory("Lifecycle"))

	// 1-2：构造与 setter 注入
	controller := controllers.NewBeanLifeCycleController(recorder)
	controller.SetGreetingService(services.NewPrimaryGreetingService())

	// 3-10：后置处理器只传给这一个 bean
	controller = core.Register(rt, settings.Bean.Name, controller,
		controllers.NewGreetingOverrideProcessor(recorder))

	environment := core.RegisterLazy(rt, EnvironmentControllerName, func() *controllers.EnvironmentController {
		return controllers.NewEnvironmentController(services.NewEnvironmentService(settings.App.Environment))
	})

	rt.Lifecycle.OnStart(func(context.Context) error {
		logger.Info("Beans registered", logging.Field{Key: "beans", Value: rt.BeanNames()})
		return nil
	})

	return &Application{
		Runtime:     rt,
		Recorder:    recorder,
		Settings:    settings,
		controller:  controller,
		environment: environment,
	}, nil
}

// Controller 返回生命周期控制器
func (a *Application) Controller() *controllers.BeanLifeCycleController {
	return a.controller
}

// SayHello 调用生命周期控制器
func (a *Application) SayHello() string {
	return a.controller.SayHello()
}

// GetEnvironment 调用环境控制器，首次调用时创建它
func (a *Application) GetEnvironment() string {
	return a.environment.Get().GetEnvironment()
}

// Close 执行所有 bean 的销毁阶段
func (a *Application) Close(ctx context.Context) error {
	return a.Runtime.Stop(ctx)
}
