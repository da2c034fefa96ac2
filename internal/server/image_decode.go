package server

import (
	"net/http"
	"stegano/api"
	"stegano/api/flat"
	"stegano/internal/logging"
	"stegano/pkg/cipher"
	"stegano/pkg/config"
	stegImage "stegano/pkg/image"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

// DecodeImageHandler godoc
//
// @Summary Decode a message from an image
// @Description This endpoint will decode the message previously hidden in the supplied image. The success response format matches the request format, but all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode and the password the message was hidden with"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(defaults config.ImageDecodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image decode request")

		requestBody, err := readDecodeRequest(ctx)
		if err != nil {
			abortWithError(ctx, logger, "Error reading decode request", err)
			return
		}

		imageToDecode, err := readImage(requestBody.Image)
		if err != nil {
			abortWithError(ctx, logger, "Error decoding request image", err)
			return
		}

		iConfig := defaults
		if requestBody.IVMode != "" {
			if iConfig.IVMode, err = cipher.ParseIVMode(requestBody.IVMode); err != nil {
				abortWithError(ctx, logger, "Invalid IV mode", err)
				return
			}
		}

		imageDecoder, err := stegImage.NewImageDecoder(imageToDecode, iConfig)
		if err != nil {
			abortWithError(ctx, logger, "Error creating image decoder", err)
			return
		}
		message, err := imageDecoder.Decode(requestBody.Password)
		if err != nil {
			abortWithError(ctx, logger, "Error decoding message from image", err)
			return
		}

		logger.With("stats", imageDecoder.Stats().Humanize()).Info("Image decoding was successful")

		if isFlatbuffersRequest(ctx) {
			ctx.Data(http.StatusOK, mimeOctetStream, buildDecodeResponse(message))
			return
		}
		ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: message})
	}
}

func readDecodeRequest(ctx *gin.Context) (api.DecodeImageRequest, error) {
	var requestBody api.DecodeImageRequest
	if !isFlatbuffersRequest(ctx) {
		return requestBody, bindJSON(ctx, &requestBody)
	}

	err := readFlatbuffersRequest(ctx, func(body []byte) {
		fbRequest := flat.GetRootAsDecodeImageRequest(body, 0)
		requestBody = api.DecodeImageRequest{
			Image:    fbRequest.ImageBytes(),
			Password: string(fbRequest.Password()),
			IVMode:   string(fbRequest.IvMode()),
		}
	})
	return requestBody, err
}

func buildDecodeResponse(message string) []byte {
	builder := flatbuffers.NewBuilder(len(message) + 32)
	offset := builder.CreateString(message)
	flat.DecodeImageResponseStart(builder)
	flat.DecodeImageResponseAddMessage(builder, offset)
	builder.Finish(flat.DecodeImageResponseEnd(builder))
	return builder.FinishedBytes()
}
