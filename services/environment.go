package services

import "strings"

// EnvironmentService 报告当前环境名
type EnvironmentService interface {
	GetEnv() string
}

// 常见环境别名到短名的映射
var profiles = map[string]string{
	"dev":         "dev",
	"development": "dev",
	"qa":          "qa",
	"uat":         "uat",
	"staging":     "uat",
	"prod":        "prod",
	"production":  "prod",
}

// ProfileEnvironmentService 根据配置的环境名报告环境
// 已知的 profile 返回短名，其余情况原样返回配置值
type ProfileEnvironmentService struct {
	name string
}

// NewEnvironmentService 创建环境服务
func NewEnvironmentService(configured string) *ProfileEnvironmentService {
	name := strings.TrimSpace(configured)
	if short, ok := profiles[strings.ToLower(name)]; ok {
		name = short
	}
	return &ProfileEnvironmentService{name: name}
}

func (s *ProfileEnvironmentService) GetEnv() string {
	return s.name
}
