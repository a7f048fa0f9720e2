package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/internal/catalog"
	"kamau.dev/portfolio/internal/http/dto"
	"kamau.dev/portfolio/internal/service"
)

type PortfolioHandler struct {
	stars service.StarService
}

func NewPortfolioHandler(stars service.StarService) *PortfolioHandler {
	return &PortfolioHandler{stars: stars}
}

func (h *PortfolioHandler) Projects(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProjectsResponse{Projects: catalog.Projects()})
}

func (h *PortfolioHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ContactResponse{Methods: catalog.ContactMethods()})
}

func (h *PortfolioHandler) Stars(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.stars.Summary(ctx)
	if err != nil {
		slog.WarnContext(ctx, "star summary unavailable", "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "failed to fetch GitHub data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStarsResponse(summary))
}
