// @title EstudiaPro Demo API
// @version 1.0
// @description Backend de demostración de EstudiaPro: sirve el mismo grafo de datos que el simulador en proceso.

// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"estudiapro_client/internal/app"
	"estudiapro_client/internal/config"
	"estudiapro_client/pkg/configwatcher"
	"estudiapro_client/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; env vars win over the yaml file either way.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.Reload)

	application.Run()
}
