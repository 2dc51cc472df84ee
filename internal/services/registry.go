package services

// ServiceContainer groups every service for handler wiring.
type ServiceContainer struct {
	AccountService AccountService
}
