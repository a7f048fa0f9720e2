package router

import (
	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/internal/http/handler"
)

func AskRouter(rg *gin.RouterGroup, h *handler.AskHandler) {
	rg.POST("/ask", h.Ask)
}
