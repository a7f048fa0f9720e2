package router

import (
	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/internal/http/handler"
	"kamau.dev/portfolio/internal/metrics"
	"kamau.dev/portfolio/internal/service"
)

type RouterConfig struct {
	TraceHeaderName string
	Metrics         *metrics.Metrics
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	api := router.Group("/api")
	{
		askHandler := handler.NewAskHandler(services.Assistant(), cfg.Metrics, cfg.TraceHeaderName)
		AskRouter(api, askHandler)

		portfolioHandler := handler.NewPortfolioHandler(services.Stars())
		PortfolioRouter(api, portfolioHandler)
	}
}
