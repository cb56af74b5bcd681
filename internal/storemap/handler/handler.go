package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/httpx"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StoreMapHandler struct {
	uc     storemap.UseCase
	logger logger.ZapLogger
}

func NewStoreMapHandler(uc storemap.UseCase, log logger.ZapLogger) *StoreMapHandler {
	return &StoreMapHandler{
		uc:     uc,
		logger: log,
	}
}

// Register mounts the map routes. Write routes go through guard.
func (h *StoreMapHandler) Register(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	rg.GET("/maps", h.ListMaps)
	rg.GET("/maps/:id", h.GetMap)
	rg.GET("/maps/:id/image", h.GetMapImage)
	rg.POST("/maps", httpx.Chain(guard, h.CreateMap)...)
	rg.POST("/maps/upload", httpx.Chain(guard, h.UploadMap)...)
}

type createMapRequest struct {
	Name      string `json:"name" binding:"required"`
	ImagePath string `json:"image_path" binding:"required"`
}

func (h *StoreMapHandler) CreateMap(c *gin.Context) {
	var req createMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.uc.CreateMap(c.Request.Context(), &dto.CreateMapInput{
		Name:      req.Name,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		if errors.Is(err, storemap.ErrInvalidMap) {
			c.JSON(http.StatusBadRequest, gin.H{"id": model.InvalidID, "error": err.Error()})
			return
		}
		h.logger.Error("failed to create map", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"id": model.InvalidID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *StoreMapHandler) UploadMap(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded map", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	m, err := h.uc.UploadMap(c.Request.Context(), &dto.UploadMapInput{
		Name:  c.PostForm("name"),
		Image: f,
	})
	if err != nil {
		if errors.Is(err, storemap.ErrInvalidMap) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to upload map", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"id": model.InvalidID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": m})
}

func (h *StoreMapHandler) GetMap(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	m, err := h.uc.GetMap(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": storemap.ErrMapNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": m})
}

func (h *StoreMapHandler) ListMaps(c *gin.Context) {
	maps, err := h.uc.ListMaps(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": maps})
}

func (h *StoreMapHandler) GetMapImage(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	img, err := h.uc.OpenMapImage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storemap.ErrMapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to load map image", zap.Int64("map_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	httpx.PNG(c, img)
}
