package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "BEANLIFE_"

// DefaultBeanName 生命周期控制器的默认注册名
const DefaultBeanName = "myController"

// Settings 应用配置
type Settings struct {
	App     AppSettings     `yaml:"app"`
	Bean    BeanSettings    `yaml:"bean"`
	Logging LoggingSettings `yaml:"logging"`
}

// AppSettings 应用信息
type AppSettings struct {
	Name string `yaml:"name" validate:"required"`
	// Environment 由环境服务报告给 EnvironmentController
	Environment string `yaml:"environment" validate:"required"`
}

// BeanSettings 生命周期控制器的注册选项
type BeanSettings struct {
	Name string `yaml:"name" validate:"required"`
}

// LoggingSettings 日志选项
type LoggingSettings struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
	Color  bool   `yaml:"color"`
}

// DefaultSettings 返回默认配置
func DefaultSettings() Settings {
	return Settings{
		App: AppSettings{
			Name:        "beanlife",
			Environment: "development",
		},
		Bean: BeanSettings{
			Name: DefaultBeanName,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Defaults 以内存配置源的形式提供默认值，作为第一个配置源使用
func Defaults() map[string]any {
	d := DefaultSettings()
	return map[string]any{
		"app": map[string]any{
			"name":        d.App.Name,
			"environment": d.App.Environment,
		},
		"bean": map[string]any{
			"name": d.Bean.Name,
		},
		"logging": map[string]any{
			"level":  d.Logging.Level,
			"format": d.Logging.Format,
			"color":  d.Logging.Color,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadSettings 从配置绑定并校验 Settings
func LoadSettings(cfg Configuration) (Settings, error) {
	settings, err := Load[Settings](cfg, "")
	if err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate 校验配置
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config: invalid %s (%s)", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Build 按约定顺序构建配置：默认值、YAML 文件、环境变量
// path 为空时跳过文件；optional 为 true 时文件不存在不视为错误
func Build(path string, optional bool) (Configuration, error) {
	builder := NewConfigurationBuilder().AddInMemory(Defaults())
	if path != "" {
		builder.AddYamlFile(path, optional)
	}
	builder.AddEnvironmentVariables(EnvPrefix)
	return builder.Build()
}
