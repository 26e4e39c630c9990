package handlers

// AppHandlers groups all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProviderHandler  *ProviderHandler
	DirectoryHandler *DirectoryHandler
	HealthHandler    *HealthHandler
}
