package core

import "strings"

// Environment 环境接口
type Environment interface {
	Name() string
	IsDevelopment() bool
	IsProduction() bool
	IsStaging() bool
}

// environment 环境实现
type environment struct {
	name string
}

// NewEnvironment 创建环境
func NewEnvironment(name string) Environment {
	return &environment{name: name}
}

func (e *environment) Name() string {
	return e.name
}

func (e *environment) IsDevelopment() bool {
	return e.is("development", "dev")
}

func (e *environment) IsProduction() bool {
	return e.is("production", "prod")
}

func (e *environment) IsStaging() bool {
	return e.is("staging", "uat")
}

func (e *environment) is(names ...string) bool {
	for _, n := range names {
		if strings.EqualFold(e.name, n) {
			return true
		}
	}
	return false
}
