package util

import (
	"errors"
	"net/http"
	"study_tracker_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

// Skipped 必填字段缺失时不做任何写入，也不视为错误
func Skipped(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "skipped",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

// ConfirmationRequired 删除操作需显式确认（confirm=true）
func ConfirmationRequired(c *gin.Context) {
	Error(c, http.StatusPreconditionRequired, ErrConfirmationRequired.Error())
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// HandleError 按错误类型映射响应码，未识别的错误记录日志并返回 500
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrUnknownCollection):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConfirmationRequired):
		ConfirmationRequired(c)
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidMonth),
		errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrInvalidModuleOp),
		errors.Is(err, ErrInvalidFileType):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
