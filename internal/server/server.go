package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"stegano/pkg/config"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stegano/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	maxRequestBodySize = 64 << 20
)

// StartServer godoc
// @title stegano API
// @version 1.0
// @description An API to hide encrypted messages in images
// @BasePath /api/v1
func StartServer(port string, cfg *config.File) error {
	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}
	return router.Run(fmt.Sprintf(":%s", port))
}

func NewRouter(cfg *config.File) (*gin.Engine, error) {
	encodeConfig, err := cfg.EncodeConfig()
	if err != nil {
		return nil, err
	}
	decodeConfig, err := cfg.DecodeConfig()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), limitBodySize(maxRequestBodySize))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/encode/image", EncodeImageHandler(encodeConfig))
	v1.POST("/decode/image", DecodeImageHandler(decodeConfig))
	v1.POST("/capacity/image", CapacityImageHandler(encodeConfig))

	return r, nil
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}

type accessLogEntry struct {
	Timestamp   string `json:"timestamp"`
	StatusCode  int    `json:"status_code"`
	Latency     string `json:"latency"`
	LatencyRaw  int64  `json:"latency_raw"`
	BodySize    string `json:"body_size"`
	BodySizeRaw int    `json:"body_size_raw"`
	ClientIP    string `json:"client_ip"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Error       string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	entry, err := json.Marshal(accessLogEntry{
		Timestamp:   param.TimeStamp.Format(RFC3339Millis),
		StatusCode:  param.StatusCode,
		Latency:     param.Latency.String(),
		LatencyRaw:  int64(param.Latency),
		BodySize:    humanize.Bytes(uint64(max(param.BodySize, 0))),
		BodySizeRaw: param.BodySize,
		ClientIP:    param.ClientIP,
		Method:      param.Method,
		Path:        param.Path,
		Error:       param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
