package contextkeys

type contextKey string

// DBContextKey is the key under which middleware places the request-scoped
// *gorm.DB (the shared pool, or a transaction in tests).
const DBContextKey contextKey = "db"
