package server

import (
	"net/http"
	"stegano/api"
	"stegano/internal/logging"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	stegImage "stegano/pkg/image"

	"github.com/gin-gonic/gin"
)

// CapacityImageHandler godoc
//
// @Summary Capacity of an image
// @Description Reports how many bits the supplied image can hold, and the longest message that can be hidden in it once encrypted
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Body with the image to inspect"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)

		var requestBody api.CapacityImageRequest
		if err := bindJSON(ctx, &requestBody); err != nil {
			abortWithError(ctx, logger, "Error reading capacity request", err)
			return
		}

		img, err := readImage(requestBody.Image)
		if err != nil {
			abortWithError(ctx, logger, "Error decoding request image", err)
			return
		}

		ivMode := defaults.IVMode
		if requestBody.IVMode != "" {
			ivMode = cipher.IVMode(requestBody.IVMode)
		}
		aesCipher, err := cipher.NewAES(ivMode)
		if err != nil {
			abortWithError(ctx, logger, "Invalid IV mode", err)
			return
		}

		capacity := stegImage.Capacity(img.Bounds(), aesCipher)
		ctx.JSON(http.StatusOK, api.CapacityImageResponse{
			Width:           capacity.Width,
			Height:          capacity.Height,
			CapacityBits:    capacity.CapacityBits,
			MaxMessageBytes: capacity.MaxMessageBytes,
			Human:           capacity.Human(),
		})
	}
}
