package server

import (
	"errors"
	"net/http"
	"stegano/api"
	"stegano/pkg/cipher"
	stegImage "stegano/pkg/image"
)

var (
	errRequestBodyDecode = errors.New("error reading request body")
	errInvalidImage      = errors.New("invalid image supplied in request body")
)

var (
	errInternal      = api.Error{Code: "internal_error", Error: "An error occurred while processing the image"}
	errNothingHidden = api.Error{Code: "nothing_hidden", Error: stegImage.ErrNothingHidden.Error()}
)

// toAPIError maps an error to the status code and body returned to the client. Only validation errors have their
// message forwarded.
func toAPIError(err error) (int, api.Error) {
	switch {
	case errors.Is(err, errRequestBodyDecode):
		return http.StatusBadRequest, api.Error{Code: "invalid_request", Error: err.Error()}
	case errors.Is(err, errInvalidImage):
		return http.StatusBadRequest, api.Error{Code: "invalid_image", Error: err.Error()}
	case errors.Is(err, stegImage.ErrImageNotBigEnough):
		return http.StatusBadRequest, api.Error{Code: "image_too_small", Error: err.Error()}
	case errors.Is(err, stegImage.ErrMessageNotSingleByte),
		errors.Is(err, stegImage.ErrPasswordNotSingleByte),
		errors.Is(err, stegImage.ErrPasswordTooShort),
		errors.Is(err, cipher.ErrUnknownIVMode):
		return http.StatusBadRequest, api.Error{Code: "invalid_input", Error: err.Error()}
	case errors.Is(err, stegImage.ErrNothingHidden):
		return http.StatusUnprocessableEntity, errNothingHidden
	default:
		return http.StatusInternalServerError, errInternal
	}
}
