package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"exam-coach-backend/completion"
	"exam-coach-backend/config"
	"exam-coach-backend/examapi"
	"exam-coach-backend/logger"
	"exam-coach-backend/middleware"
	"exam-coach-backend/questions"
)

func main() {
	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	if cfg.APIKey() == "" {
		lg.Warn("API key for completion provider is not set; every request will be served from fallbacks",
			"provider", cfg.Provider)
	}

	gw, err := completion.New(context.Background(), cfg)
	if err != nil {
		lg.Fatal("init completion gateway", "error", err)
	}
	gw = completion.WithLogging(gw, lg)

	svc := questions.NewService(gw, lg, questions.WithTimeout(cfg.UpstreamTimeout))
	h := examapi.NewHandler(svc, lg)
	h.SetUpstream(gw.Provider(), gw.ModelID())

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(lg))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	h.RegisterRoutes(r)

	lg.Info("exam coach backend running", "port", cfg.Port, "provider", gw.Provider(), "model", gw.ModelID())
	if err := r.Run(cfg.Addr()); err != nil {
		lg.Fatal("server stopped", "error", err)
	}
}
