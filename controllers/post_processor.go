package controllers

import (
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/services"
)

// InjectedGreeting 替换后的问候服务返回的固定文本
const InjectedGreeting = "Lol this is an injected deps :) :)"

var _ services.GreetingService = (*InjectedGreetingService)(nil)

// InjectedGreetingService 由后置处理器安装的替身问候服务
type InjectedGreetingService struct {
	recorder *lifecycle.Recorder
}

// NewInjectedGreetingService 创建替身问候服务，recorder 可以为 nil
func NewInjectedGreetingService(recorder *lifecycle.Recorder) *InjectedGreetingService {
	return &InjectedGreetingService{recorder: recorder}
}

func (s *InjectedGreetingService) SayGreeting() string {
	s.recorder.Note("I'm hacked (^_^)")
	return InjectedGreeting
}

var _ lifecycle.BeanPostProcessor = (*GreetingOverrideProcessor)(nil)

// GreetingOverrideProcessor 在初始化前把 BeanLifeCycleController 的问候服务换成 InjectedGreetingService
type GreetingOverrideProcessor struct {
	recorder *lifecycle.Recorder
}

// NewGreetingOverrideProcessor 创建后置处理器
func NewGreetingOverrideProcessor(recorder *lifecycle.Recorder) *GreetingOverrideProcessor {
	return &GreetingOverrideProcessor{recorder: recorder}
}

func (p *GreetingOverrideProcessor) PostProcessBeforeInitialization(bean any, name string) any {
	controller, ok := bean.(*BeanLifeCycleController)
	if !ok {
		return bean
	}
	p.recorder.Mark(lifecycle.StagePostProcessBefore)
	controller.SetGreetingService(NewInjectedGreetingService(p.recorder))
	return controller
}

func (p *GreetingOverrideProcessor) PostProcessAfterInitialization(bean any, name string) any {
	if name == LifeCycleBeanName {
		p.recorder.Mark(lifecycle.StagePostProcessAfter)
	}
	return bean
}
