// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	attendancefeature "github.com/Artemka1806/LyBotAPI/internal/app/features/attendance"
	authgooglefeature "github.com/Artemka1806/LyBotAPI/internal/app/features/authgoogle"
	electionfeature "github.com/Artemka1806/LyBotAPI/internal/app/features/election"
	healthfeature "github.com/Artemka1806/LyBotAPI/internal/app/features/health"
	homefeature "github.com/Artemka1806/LyBotAPI/internal/app/features/home"
	userstore "github.com/Artemka1806/LyBotAPI/internal/app/store/users"
	"github.com/Artemka1806/LyBotAPI/internal/app/system/telegram"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The store and the Telegram client are
// constructed once here and injected into the feature handlers; no feature
// reaches for globals.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	users := userstore.New(deps.LyBotMongoDatabase)
	bot := telegram.New(appCfg.TelegramAPIBase, appCfg.TelegramBotToken, appCfg.TelegramChatID, logger)

	r := chi.NewRouter()

	// Liveness probe
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.LyBotMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Google OAuth login + callback (both live at the root path level)
	authHandler := authgooglefeature.NewHandler(
		users,
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.GoogleRedirectURI,
		appCfg.BotDeepLink,
		logger,
	)
	r.Get("/tgbotlogin", authHandler.ServeLogin)
	r.Get("/auth", authHandler.ServeCallback)

	// Attendance report
	attendanceHandler := attendancefeature.NewHandler(users, logger)
	r.Mount("/attendance", attendancefeature.Routes(attendanceHandler))

	// Election form relay
	electionHandler := electionfeature.NewHandler(bot, appCfg.ElectionRedirectURL, logger)
	r.Mount("/election", electionfeature.Routes(electionHandler))

	return r, nil
}
