package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Audit log display window
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdminName = "admin_name"
	ContextKeyAdminRank = "admin_rank"
	ContextKeySessionID = "session_id"

	// Database table names
	TableHelpers       = "helpers"
	TableTickets       = "tickets"
	TableAdminAccounts = "admin_accounts"
	TableSessions      = "sessions"
	TableAuditEntries  = "audit_entries"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Insufficient privilege"
)
