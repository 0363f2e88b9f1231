package handler

import (
	"errors"
	"net/http"
	"strings"

	"campus_club_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// 所有接口都返回统一响应结构：{success, message, statusCode, data}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "success",
		"statusCode": http.StatusOK,
		"data":       data,
	})
}

// HandleCreated 返回资源创建成功响应
func HandleCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "success",
		"statusCode": http.StatusCreated,
		"data":       data,
	})
}

// HandleError 通用错误处理方法
// 识别 errorx.CodeError 并映射为对应的 HTTP 状态码，其他错误一律按服务繁忙处理
// 使用示例：
//
//	if err := svc.DoSomething(); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		status := errorx.HTTPStatus(codeErr.Code)
		if status >= http.StatusInternalServerError {
			// 内部错误的细节不出边界
			zap.L().Error("internal error",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
		}
		c.JSON(status, gin.H{
			"success":    false,
			"message":    codeErr.Msg,
			"statusCode": status,
			"data":       nil,
		})
		return
	}

	// 未知错误：记录日志并返回服务繁忙
	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success":    false,
		"message":    errorx.ErrServerBusy.Msg,
		"statusCode": http.StatusInternalServerError,
		"data":       nil,
	})
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		// 翻译后去除结构体名前缀
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		msgs := make([]string, 0, len(translatedErrs))
		for _, m := range translatedErrs {
			msgs = append(msgs, m)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    strings.Join(msgs, "; "),
			"statusCode": http.StatusBadRequest,
			"data":       nil,
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误）
	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"success":    false,
		"message":    errorx.ErrInvalidParam.Msg,
		"statusCode": http.StatusBadRequest,
		"data":       nil,
	})
}
