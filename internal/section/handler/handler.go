package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/section"
	"github.com/fekuna/omnipos-storefinder-service/internal/section/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/httpx"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SectionHandler struct {
	uc     section.UseCase
	logger logger.ZapLogger
}

func NewSectionHandler(uc section.UseCase, log logger.ZapLogger) *SectionHandler {
	return &SectionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SectionHandler) Register(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	rg.GET("/maps/:id/sections", h.ListSections)
	rg.POST("/maps/:id/sections", httpx.Chain(guard, h.CreateSection)...)
	rg.GET("/sections/:id", h.GetSection)
}

type createSectionRequest struct {
	Name string   `json:"name" binding:"required"`
	X    *float64 `json:"x" binding:"required"`
	Y    *float64 `json:"y" binding:"required"`
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	var req createSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.uc.CreateSection(c.Request.Context(), &dto.CreateSectionInput{
		MapID: mapID,
		Name:  req.Name,
		X:     *req.X,
		Y:     *req.Y,
	})
	if err != nil {
		if errors.Is(err, section.ErrInvalidSection) {
			c.JSON(http.StatusBadRequest, gin.H{"id": model.InvalidID, "error": err.Error()})
			return
		}
		h.logger.Error("failed to create section", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"id": model.InvalidID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SectionHandler) GetSection(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	s, err := h.uc.GetSection(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": section.ErrSectionNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s})
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	sections, err := h.uc.ListSections(c.Request.Context(), mapID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sections})
}
