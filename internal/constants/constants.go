package constants

// Context keys
const (
	ContextKeyOrgContext = "org_context"
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
