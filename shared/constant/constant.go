package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
	ContextKeyStore   contextKey = "store"
)

const (
	RequestParamListID = "listID"
	RequestParamTodoID = "todoID"
)

const (
	CacheKeySession = "session"
	DaysToSeconds   = 24 * 60 * 60
)

const (
	OtelServiceScopeName  = "service"
	OtelStoreScopeName    = "store"
	OtelHandlerScopeName  = "handler"
	OtelExecutorScopeName = "executor"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
