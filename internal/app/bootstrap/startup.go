// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. This
// service has no caches or templates to warm, so it only records that the
// app is ready to serve.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("lybotapi startup complete",
		zap.String("bot_deep_link", appCfg.BotDeepLink))
	return nil
}
