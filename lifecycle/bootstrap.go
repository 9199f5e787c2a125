package lifecycle

// Initialize 依次执行 3-10 阶段：
// beanName、beanFactory、applicationContext、postProcessBefore、init、beanInitializing、postProcessAfter。
// 构造与 setter 注入由调用方在此之前完成；bean 未实现的回调直接跳过。
// 处理器返回的替换对象必须仍是 T，否则忽略。
func Initialize[T any](bean T, name string, ctx ApplicationContext, processors ...BeanPostProcessor) T {
	if b, ok := any(bean).(BeanNameAware); ok {
		b.SetBeanName(name)
	}
	if b, ok := any(bean).(BeanFactoryAware); ok {
		b.SetBeanFactory(ctx)
	}
	if b, ok := any(bean).(ApplicationContextAware); ok {
		b.SetApplicationContext(ctx)
	}

	for _, p := range processors {
		bean = replace(bean, p.PostProcessBeforeInitialization(bean, name))
	}

	if b, ok := any(bean).(PostConstructor); ok {
		b.Init()
	}
	if b, ok := any(bean).(InitializingBean); ok {
		b.AfterPropertiesSet()
	}

	for _, p := range processors {
		bean = replace(bean, p.PostProcessAfterInitialization(bean, name))
	}

	return bean
}

// Destroy 依次执行 preDestroy 与 destroy
func Destroy(bean any) {
	if b, ok := bean.(PreDestroyer); ok {
		b.PreDestroy()
	}
	if b, ok := bean.(DisposableBean); ok {
		b.Destroy()
	}
}

func replace[T any](current T, out any) T {
	if out == nil {
		return current
	}
	if v, ok := out.(T); ok {
		return v
	}
	return current
}
