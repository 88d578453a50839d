// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, CORS); AppConfig is
// everything specific to this application: Mongo connection details, Google
// OAuth client credentials, and the Telegram bot endpoints the service
// relays into.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Google OAuth configuration
	GoogleClientID     string // Google OAuth2 client ID
	GoogleClientSecret string // Google OAuth2 client secret
	GoogleRedirectURI  string // Redirect URI registered with Google (the /auth callback)

	// Telegram bot configuration
	BotDeepLink      string // Bot deep-link base (e.g., https://t.me/lybot); user ID is appended as ?start=
	TelegramBotToken string // Bot API token used by the notification relay
	TelegramChatID   string // Destination chat/group ID for relayed messages
	TelegramAPIBase  string // Bot API base URL (default https://api.telegram.org; overridable for tests)

	// Election form relay
	ElectionRedirectURL string // Fixed page the /election handler always redirects to
}
