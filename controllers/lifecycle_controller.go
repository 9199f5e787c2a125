package controllers

import (
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/services"
)

// LifeCycleBeanName 生命周期控制器的约定注册名
const LifeCycleBeanName = "myController"

var (
	_ lifecycle.BeanNameAware           = (*BeanLifeCycleController)(nil)
	_ lifecycle.BeanFactoryAware        = (*BeanLifeCycleController)(nil)
	_ lifecycle.ApplicationContextAware = (*BeanLifeCycleController)(nil)
	_ lifecycle.PostConstructor         = (*BeanLifeCycleController)(nil)
	_ lifecycle.InitializingBean        = (*BeanLifeCycleController)(nil)
	_ lifecycle.PreDestroyer            = (*BeanLifeCycleController)(nil)
	_ lifecycle.DisposableBean          = (*BeanLifeCycleController)(nil)
)

// BeanLifeCycleController 在每个生命周期回调中输出一行标记
//
// 阶段顺序：
//
//  1. constructor
//  2. setter
//  3. beanName
//  4. beanFactory
//  5. applicationContext
//  7. postProcessBefore
//  8. init
//  9. beanInitializing
//  10. postProcessAfter
//  11. preDestroy
//  12. destroy
type BeanLifeCycleController struct {
	recorder        *lifecycle.Recorder
	greetingService services.GreetingService
}

// NewBeanLifeCycleController 构造控制器
func NewBeanLifeCycleController(recorder *lifecycle.Recorder) *BeanLifeCycleController {
	c := &BeanLifeCycleController{recorder: recorder}
	recorder.Mark(lifecycle.StageConstructor)
	return c
}

// SetGreetingService setter 注入，每次调用都会输出标记
func (c *BeanLifeCycleController) SetGreetingService(svc services.GreetingService) {
	c.greetingService = svc
	c.recorder.Mark(lifecycle.StageSetter)
}

func (c *BeanLifeCycleController) SetBeanName(name string) {
	c.recorder.Mark(lifecycle.StageBeanName, name)
}

func (c *BeanLifeCycleController) SetBeanFactory(lifecycle.BeanFactory) {
	c.recorder.Mark(lifecycle.StageBeanFactory)
}

func (c *BeanLifeCycleController) SetApplicationContext(lifecycle.ApplicationContext) {
	c.recorder.Mark(lifecycle.StageApplicationContext)
}

func (c *BeanLifeCycleController) Init() {
	c.recorder.Mark(lifecycle.StageInit)
}

func (c *BeanLifeCycleController) AfterPropertiesSet() {
	c.recorder.Mark(lifecycle.StageBeanInitializing)
}

// SayHello 返回当前问候服务的问候语
func (c *BeanLifeCycleController) SayHello() string {
	c.recorder.Note("I'm in the controller")
	return c.greetingService.SayGreeting()
}

func (c *BeanLifeCycleController) PreDestroy() {
	c.recorder.Mark(lifecycle.StagePreDestroy)
}

func (c *BeanLifeCycleController) Destroy() {
	c.recorder.Mark(lifecycle.StageDestroy)
}
