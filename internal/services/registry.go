package services

// ServiceContainer groups all services for injection into handlers.
type ServiceContainer struct {
	AuthService      AuthService
	ProviderService  ProviderService
	DirectoryService DirectoryService
}
