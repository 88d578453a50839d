// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LyBotAPI.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, google_client_id, etc.
//   - Environment variables: LYBOT_MONGO_URI, LYBOT_GOOGLE_CLIENT_ID, etc.
//   - Command-line flags: --mongo_uri, --google_client_id, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lybot", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},
	{Name: "google_redirect_uri", Default: "", Desc: "OAuth redirect URI registered with Google (the /auth callback)"},

	// Telegram bot configuration
	{Name: "bot_deep_link", Default: "", Desc: "Telegram bot deep-link base URL (e.g., https://t.me/lybot)"},
	{Name: "telegram_bot_token", Default: "", Desc: "Telegram Bot API token for the notification relay"},
	{Name: "telegram_chat_id", Default: "", Desc: "Destination chat/group ID for relayed messages"},
	{Name: "telegram_api_base", Default: "https://api.telegram.org", Desc: "Telegram Bot API base URL"},

	// Election form relay
	{Name: "election_redirect_url", Default: "", Desc: "URL the /election form always redirects to"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built. WAFFLE's
// config.LoadWithAppConfig merges .env files, config files, LYBOT_*
// environment variables, and command-line flags with the usual precedence
// (flags > env > files > defaults).
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LYBOT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),
		GoogleRedirectURI:  appValues.String("google_redirect_uri"),

		BotDeepLink:      appValues.String("bot_deep_link"),
		TelegramBotToken: appValues.String("telegram_bot_token"),
		TelegramChatID:   appValues.String("telegram_chat_id"),
		TelegramAPIBase:  appValues.String("telegram_api_base"),

		ElectionRedirectURL: appValues.String("election_redirect_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A missing credential is a startup-time configuration error, not a
// per-request one: every endpoint in this service depends on an external
// system, so we fail fast rather than serve requests that can only error.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	required := []struct {
		name  string
		value string
	}{
		{"google_client_id", appCfg.GoogleClientID},
		{"google_client_secret", appCfg.GoogleClientSecret},
		{"google_redirect_uri", appCfg.GoogleRedirectURI},
		{"bot_deep_link", appCfg.BotDeepLink},
		{"telegram_bot_token", appCfg.TelegramBotToken},
		{"telegram_chat_id", appCfg.TelegramChatID},
		{"election_redirect_url", appCfg.ElectionRedirectURL},
	}
	for _, req := range required {
		if req.value == "" {
			return fmt.Errorf("missing required configuration: %s", req.name)
		}
	}

	return nil
}
