package api

type EncodeImageRequest struct {
	// PNG or JPEG image to hide the message in
	Image    []byte `json:"image" binding:"required"`
	Message  string `json:"message"`
	Password string `json:"password" binding:"required"`
	// zero or random, the server default is used when empty
	IVMode string `json:"iv_mode,omitempty"`
}

type EncodeImageResponse struct {
	// PNG image with the message hidden in it
	EncodedImage []byte `json:"encoded_image"`
}

type DecodeImageRequest struct {
	Image    []byte `json:"image" binding:"required"`
	Password string `json:"password" binding:"required"`
	IVMode   string `json:"iv_mode,omitempty"`
}

type DecodeImageResponse struct {
	Message string `json:"message"`
}

type CapacityImageRequest struct {
	Image  []byte `json:"image" binding:"required"`
	IVMode string `json:"iv_mode,omitempty"`
}

type CapacityImageResponse struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	CapacityBits int `json:"capacity_bits"`
	// Longest message that fits in the image, -1 if not even an empty one does
	MaxMessageBytes int    `json:"max_message_bytes"`
	Human           string `json:"human"`
}
