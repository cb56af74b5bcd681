package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-storefinder-service/internal/locator"
	"github.com/fekuna/omnipos-storefinder-service/internal/product"
	"github.com/fekuna/omnipos-storefinder-service/internal/section"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	"github.com/fekuna/omnipos-storefinder-service/pkg/httpx"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxShoppingListBytes caps a shopping list request body.
const MaxShoppingListBytes = 1 << 20

type LocatorHandler struct {
	uc     locator.UseCase
	logger logger.ZapLogger
}

func NewLocatorHandler(uc locator.UseCase, log logger.ZapLogger) *LocatorHandler {
	return &LocatorHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LocatorHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/live-search", h.LiveSearch)
	rg.GET("/maps/:id/locate/:productId", h.LocateProduct)
	rg.GET("/maps/:id/image/sections", h.SectionMarkers)
	rg.POST("/maps/:id/shopping-list", h.ShoppingList)
	rg.POST("/maps/:id/shopping-list/image", h.ShoppingListImage)
}

func (h *LocatorHandler) LiveSearch(c *gin.Context) {
	products, err := h.uc.LiveSearch(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("live search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *LocatorHandler) LocateProduct(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	productID, ok := httpx.ParamID(c, "productId")
	if !ok {
		return
	}

	img, err := h.uc.LocateProduct(c.Request.Context(), mapID, productID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpx.PNG(c, img)
}

func (h *LocatorHandler) SectionMarkers(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}

	img, err := h.uc.RenderSectionMarkers(c.Request.Context(), mapID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpx.PNG(c, img)
}

func (h *LocatorHandler) ShoppingList(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	text, ok := readText(c)
	if !ok {
		return
	}

	list, err := h.uc.ResolveShoppingList(c.Request.Context(), mapID, text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *LocatorHandler) ShoppingListImage(c *gin.Context) {
	mapID, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	text, ok := readText(c)
	if !ok {
		return
	}

	img, list, err := h.uc.RenderShoppingList(c.Request.Context(), mapID, text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("X-Missing-Items", strconv.Itoa(len(list.Missing)))
	httpx.PNG(c, img)
}

func (h *LocatorHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storemap.ErrMapNotFound),
		errors.Is(err, section.ErrSectionNotFound),
		errors.Is(err, product.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("locator request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// readText returns the request body as the shopping list, one item per line.
// Bodies over MaxShoppingListBytes are refused with 413.
func readText(c *gin.Context) (string, bool) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxShoppingListBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	if len(data) > MaxShoppingListBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("shopping list exceeds %d bytes", MaxShoppingListBytes)})
		return "", false
	}
	return string(data), true
}
