package httpx

import (
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-storefinder-service/internal/mapview"
	"github.com/gin-gonic/gin"
)

// ParamID parses a positive int64 path parameter. On failure it writes a 400
// response and returns false.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return id, true
}

// PNG writes img as an image/png response.
func PNG(c *gin.Context, img image.Image) {
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := mapview.EncodePNG(c.Writer, img); err != nil {
		c.Error(err)
	}
}

// Chain returns guard followed by h in a fresh slice.
func Chain(guard []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(guard)+1)
	handlers = append(handlers, guard...)
	return append(handlers, h)
}
