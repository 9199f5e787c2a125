package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrud/beanlife/controllers"
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/services"
)

type staticEnvironment string

func (e staticEnvironment) GetEnv() string { return string(e) }

type fakeContext struct{ names []string }

func (c fakeContext) ContainsBean(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}
func (c fakeContext) BeanNames() []string     { return c.names }
func (c fakeContext) ID() string              { return "test" }
func (c fakeContext) ApplicationName() string { return "beanlife" }
func (c fakeContext) EnvironmentName() string { return "Test" }

// newInitialized 构造控制器，注入默认问候服务，并执行初始化阶段
func newInitialized(t *testing.T, name string) (*controllers.BeanLifeCycleController, *lifecycle.Recorder) {
	t.Helper()

	rec := lifecycle.NewRecorder(nil)
	controller := controllers.NewBeanLifeCycleController(rec)
	controller.SetGreetingService(services.NewPrimaryGreetingService())

	controller = lifecycle.Initialize(controller, name, fakeContext{names: []string{name}},
		controllers.NewGreetingOverrideProcessor(rec))
	return controller, rec
}

func TestSayHello_ReturnsInjectedGreeting(t *testing.T) {
	controller, _ := newInitialized(t, controllers.LifeCycleBeanName)

	got := controller.SayHello()
	assert.Equal(t, controllers.InjectedGreeting, got)
	assert.NotEqual(t, services.DefaultGreeting, got)
}

func TestSayHello_WithoutInterception(t *testing.T) {
	rec := lifecycle.NewRecorder(nil)
	controller := controllers.NewBeanLifeCycleController(rec)
	controller.SetGreetingService(services.NewPrimaryGreetingService())

	assert.Equal(t, services.DefaultGreeting, controller.SayHello())
}

func TestLifecycleMarkers(t *testing.T) {
	controller, rec := newInitialized(t, controllers.LifeCycleBeanName)
	controller.SayHello()
	lifecycle.Destroy(controller)

	want := []string{
		"1. constructor",
		"2. setter",
		"3. beanName : myController",
		"4. beanFactory",
		"5. applicationContext",
		"7. postProcessBefore",
		"2. setter",
		"8. init",
		"9. beanInitializing",
		"10. postProcessAfter",
		"I'm in the controller",
		"I'm hacked (^_^)",
		"11. preDestroy",
		"12. destroy",
	}
	assert.Equal(t, want, rec.Texts())
	assert.Equal(t, lifecycle.Sequence, rec.Stages())
	assert.True(t, rec.InOrder())
}

func TestMarkerRelativeOrder(t *testing.T) {
	controller, rec := newInitialized(t, controllers.LifeCycleBeanName)
	controller.SayHello()
	lifecycle.Destroy(controller)

	index := make(map[lifecycle.Stage]int)
	for i, m := range rec.Markers() {
		if _, ok := index[m.Stage]; !ok {
			index[m.Stage] = i
		}
	}

	require.Contains(t, index, lifecycle.StageInUse)
	assert.Less(t, index[lifecycle.StageConstructor], index[lifecycle.StageSetter])
	assert.Less(t, index[lifecycle.StageSetter], index[lifecycle.StageInUse])
	assert.Less(t, index[lifecycle.StageInUse], index[lifecycle.StageDestroy])
}

func TestPostProcessAfter_OnlyForRegisteredName(t *testing.T) {
	tests := []struct {
		name  string
		fires bool
	}{
		{controllers.LifeCycleBeanName, true},
		{"otherController", false},
		{"MyController", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rec := newInitialized(t, tt.name)

			var fired bool
			for _, stage := range rec.Stages() {
				if stage == lifecycle.StagePostProcessAfter {
					fired = true
				}
			}
			assert.Equal(t, tt.fires, fired)
		})
	}
}

func TestProcessorIgnoresOtherBeans(t *testing.T) {
	rec := lifecycle.NewRecorder(nil)
	processor := controllers.NewGreetingOverrideProcessor(rec)

	env := controllers.NewEnvironmentController(staticEnvironment("Test"))
	assert.Same(t, env, processor.PostProcessBeforeInitialization(env, "environmentController"))
	assert.Same(t, env, processor.PostProcessAfterInitialization(env, "environmentController"))
	assert.Empty(t, rec.Markers())
}

func TestEnvironmentController(t *testing.T) {
	controller := controllers.NewEnvironmentController(staticEnvironment("Test"))
	assert.Equal(t, "You are in Test Environment", controller.GetEnvironment())
}

func TestZeroValuesDoNotPanic(t *testing.T) {
	assert.Equal(t, controllers.InjectedGreeting, (&controllers.InjectedGreetingService{}).SayGreeting())
	assert.Equal(t, controllers.InjectedGreeting, controllers.NewInjectedGreetingService(nil).SayGreeting())

	controller := controllers.NewBeanLifeCycleController(nil)
	controller.SetGreetingService(services.NewPrimaryGreetingService())
	assert.Equal(t, services.DefaultGreeting, controller.SayHello())
}
