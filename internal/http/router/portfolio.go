package router

import (
	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/internal/http/handler"
)

func PortfolioRouter(rg *gin.RouterGroup, h *handler.PortfolioHandler) {
	rg.GET("/projects", h.Projects)
	rg.GET("/contact", h.Contact)
	rg.GET("/github/stars", h.Stars)
}
