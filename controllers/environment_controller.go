package controllers

import "github.com/gocrud/beanlife/services"

// EnvironmentController 报告当前运行环境
type EnvironmentController struct {
	environmentService services.EnvironmentService
}

func NewEnvironmentController(svc services.EnvironmentService) *EnvironmentController {
	return &EnvironmentController{environmentService: svc}
}

func (c *EnvironmentController) GetEnvironment() string {
	return "You are in " + c.environmentService.GetEnv() + " Environment"
}
