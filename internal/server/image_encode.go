package server

import (
	"bytes"
	"image/png"
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

// EncodeImageHandler godoc
//
// @Summary Hide a message in the supplied image
// @Description This endpoint will encrypt the message and hide it in the supplied image, and return the encoded PNG image. The success response format matches the request format, but all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeImageRequest true "Body with image to encode, the message to hide and the password to encrypt it with"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image encode request")

		requestBody, err := readEncodeRequest(ctx)
		if err != nil {
			abortWithError(ctx, logger, "Error reading encode request", err)
			return
		}

		imageToEncode, err := readImage(requestBody.Image)
		if err != nil {
			abortWithError(ctx, logger, "Error decoding request image", err)
			return
		}

		iConfig := defaults
		// to reduce bandwidth costs since lower compression results in huge images
		iConfig.PngCompressionLevel = png.BestCompression
		if requestBody.IVMode != "" {
			if iConfig.IVMode, err = cipher.ParseIVMode(requestBody.IVMode); err != nil {
				abortWithError(ctx, logger, "Invalid IV mode", err)
				return
			}
		}

		imageEncoder, err := stegImage.NewImageEncoder(imageToEncode, iConfig)
		if err != nil {
			abortWithError(ctx, logger, "Error creating image encoder", err)
			return
		}
		if err = imageEncoder.Encode(requestBody.Message, requestBody.Password); err != nil {
			abortWithError(ctx, logger, "Error encoding message into image", err)
			return
		}

		encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.Image))) // pre allocate with size of original, since it should be similar
		if err = imageEncoder.WriteEncodedPNG(encodedImageBuffer); err != nil {
			abortWithError(ctx, logger, "Error writing encoded image", err)
			return
		}

		logger.With("stats", imageEncoder.Stats().Humanize()).Info("Image encoding was successful")

		if isFlatbuffersRequest(ctx) {
			ctx.Data(http.StatusOK, mimeOctetStream, buildEncodeResponse(encodedImageBuffer.Bytes()))
			return
		}
		ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImageBuffer.Bytes()})
	}
}

func readEncodeRequest(ctx *gin.Context) (api.EncodeImageRequest, error) {
	var requestBody api.EncodeImageRequest
	if !isFlatbuffersRequest(ctx) {
		return requestBody, bindJSON(ctx, &requestBody)
	}

	err := readFlatbuffersRequest(ctx, func(body []byte) {
		fbRequest := flat.GetRootAsEncodeImageRequest(body, 0)
		requestBody = api.EncodeImageRequest{
			Image:    fbRequest.ImageBytes(),
			Message:  string(fbRequest.Message()),
			Password: string(fbRequest.Password()),
			IVMode:   string(fbRequest.IvMode()),
		}
	})
	return requestBody, err
}

func buildEncodeResponse(encodedImage []byte) []byte {
	builder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	offset := builder.CreateByteVector(encodedImage)
	flat.EncodeImageResponseStart(builder)
	flat.EncodeImageResponseAddEncodedImage(builder, offset)
	builder.Finish(flat.EncodeImageResponseEnd(builder))
	return builder.FinishedBytes()
}
