package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product"
	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/httpx"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	rg.GET("/products/search", h.SearchProducts)
	rg.GET("/sections/:id/products", h.ListProductsBySection)
	rg.POST("/products", httpx.Chain(guard, h.CreateProduct)...)
	rg.POST("/maps/:id/products/import", httpx.Chain(guard, h.ImportProducts)...)
}

type createProductRequest struct {
	Name      string `json:"name" binding:"required"`
	SectionID int64  `json:"section_id" binding:"required"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:      req.Name,
		SectionID: req.SectionID,
	})
	if err != nil {
		if errors.Is(err, product.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"id": model.InvalidID, "error": err.Error()})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"id": model.InvalidID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ProductHandler) ListProductsBySection(c *gin.Context) {
	sectionID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	products, err := h.uc.ListProductsBySection(c.Request.Context(), sectionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.uc.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// ImportProducts accepts either a multipart "file" field or a raw text body.
func (h *ProductHandler) ImportProducts(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()
		body = f
	}

	count, err := h.uc.ImportFile(c.Request.Context(), mapID, body)
	if err != nil {
		if errors.Is(err, product.ErrImportTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"imported": 0, "error": err.Error()})
			return
		}
		h.logger.Error("failed to import products", zap.Int64("map_id", mapID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"imported": count, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}
