package services

// DefaultGreeting 默认问候语
const DefaultGreeting = "Hello Everyone From Base!!!"

// GreetingService 提供问候语
type GreetingService interface {
	SayGreeting() string
}

// PrimaryGreetingService 默认的问候服务
type PrimaryGreetingService struct{}

// NewPrimaryGreetingService 创建默认问候服务
func NewPrimaryGreetingService() *PrimaryGreetingService {
	return &PrimaryGreetingService{}
}

func (s *PrimaryGreetingService) SayGreeting() string {
	return DefaultGreeting
}
