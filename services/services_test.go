package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryGreetingService(t *testing.T) {
	var svc GreetingService = NewPrimaryGreetingService()
	assert.Equal(t, DefaultGreeting, svc.SayGreeting())
}

func TestEnvironmentService(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{"Test", "Test"},
		{"development", "dev"},
		{"Production", "prod"},
		{"staging", "uat"},
		{"qa", "qa"},
		{"  custom  ", "custom"},
	}
	for _, tt := range tests {
		var svc EnvironmentService = NewEnvironmentService(tt.configured)
		assert.Equal(t, tt.want, svc.GetEnv(), tt.configured)
	}
}
