package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/dgsw/bookice/pkg/errors"
)

// Response 统一成功响应结构
// 设计说明：
// 1. Success固定为true（失败走ErrorResponse）
// 2. Message是面向调用方的操作结果描述
// 3. Data是业务数据，无数据时为null
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse 统一错误响应结构
// 字段说明：
// - Timestamp: 错误发生时间
// - Status: HTTP状态码
// - Error: 状态码对应的错误名（如"Not Found"）
// - Message: 用户友好的错误提示
// - FieldErrors: 仅字段校验失败时填充
type ErrorResponse struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success 成功响应（200）
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := useCase.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)
	c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   appErr.Message,
	})
}

// BindError 参数绑定/校验失败响应（400 + fieldErrors）
// 设计说明：
// gin的ShouldBind系列返回validator.ValidationErrors时，
// 逐条转换为{field, message}；其他绑定错误（如JSON语法错误）不带fieldErrors
func BindError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	resp := ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   "参数校验失败",
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			resp.FieldErrors = append(resp.FieldErrors, FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
	} else {
		resp.Message = "参数格式错误"
	}

	c.JSON(status, resp)
}

// fieldErrorMessage 根据校验tag生成中文提示
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s为必填字段", fe.Field())
	case "max":
		return fmt.Sprintf("%s长度不能超过%s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s不能小于%s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s取值必须是[%s]之一", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s校验失败(%s)", fe.Field(), fe.Tag())
	}
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List       interface{} `json:"list"`        // 数据列表
	Total      int64       `json:"total"`       // 总记录数
	Page       int         `json:"page"`        // 当前页码
	PageSize   int         `json:"page_size"`   // 每页大小
	TotalPages int         `json:"total_pages"` // 总页数
}

// NewPageData 创建分页数据
func NewPageData(list interface{}, total int64, page, pageSize int) *PageData {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &PageData{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, message string, list interface{}, total int64, page, pageSize int) {
	Success(c, message, NewPageData(list, total, page, pageSize))
}
