package lifecycle

// BeanFactory 暴露给 bean 的只读注册信息
type BeanFactory interface {
	ContainsBean(name string) bool
	BeanNames() []string
}

// ApplicationContext 暴露给 bean 的应用上下文
type ApplicationContext interface {
	BeanFactory
	ID() string
	ApplicationName() string
	EnvironmentName() string
}

// BeanNameAware 接收注册名
type BeanNameAware interface {
	SetBeanName(name string)
}

// BeanFactoryAware 接收 BeanFactory
type BeanFactoryAware interface {
	SetBeanFactory(factory BeanFactory)
}

// ApplicationContextAware 接收 ApplicationContext
type ApplicationContextAware interface {
	SetApplicationContext(ctx ApplicationContext)
}

// PostConstructor 在感知回调与前置处理之后调用
type PostConstructor interface {
	Init()
}

// InitializingBean 在 Init 之后调用
type InitializingBean interface {
	AfterPropertiesSet()
}

// PreDestroyer 销毁前调用
type PreDestroyer interface {
	PreDestroy()
}

// DisposableBean 最后调用
type DisposableBean interface {
	Destroy()
}

// BeanPostProcessor 在初始化前后观察或修改 bean
// 返回 nil 表示沿用传入的 bean
type BeanPostProcessor interface {
	PostProcessBeforeInitialization(bean any, name string) any
	PostProcessAfterInitialization(bean any, name string) any
}
