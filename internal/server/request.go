package server

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"stegano/internal/logging"
	stegImage "stegano/pkg/image"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	mimeOctetStream = "application/octet-stream"
)

func isFlatbuffersRequest(ctx *gin.Context) bool {
	return ctx.ContentType() == mimeOctetStream
}

// readFlatbuffersRequest hands the request body to read. A malformed buffer makes the generated accessors panic,
// which is reported as errRequestBodyDecode.
func readFlatbuffersRequest(ctx *gin.Context, read func(body []byte)) (err error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errRequestBodyDecode, err)
	}
	if len(body) < flatbuffers.SizeUOffsetT {
		return fmt.Errorf("%w: flatbuffer too short", errRequestBodyDecode)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: malformed flatbuffer", errRequestBodyDecode)
		}
	}()
	read(body)
	return nil
}

func bindJSON(ctx *gin.Context, requestBody any) error {
	if err := ctx.ShouldBindJSON(requestBody); err != nil {
		return fmt.Errorf("%w: %w", errRequestBodyDecode, err)
	}
	return nil
}

func readImage(rawImage []byte) (*image.NRGBA, error) {
	img, err := stegImage.Read(bytes.NewReader(rawImage))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidImage, err)
	}
	return img, nil
}

func abortWithError(ctx *gin.Context, logger *logging.Logger, msg string, err error) {
	status, body := toAPIError(err)
	if status >= 500 {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Info(msg)
	}
	ctx.AbortWithStatusJSON(status, body)
}
