package book

import (
	"context"

	"github.com/dgsw/bookice/internal/domain/book"
)

// SearchBooksUseCase 图书分页搜索用例
// 设计说明:
// 1. 两个入口:关键词搜索、组合条件搜索,共用分页参数归一化逻辑
// 2. 默认每页10条,上限100条;默认按创建时间降序
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建分页搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// PageRequest 分页请求DTO
type PageRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Sort     string // 排序字段(created_at|price|title)
	Order    string // 排序方向(asc|desc)
}

// KeywordSearchRequest 关键词搜索请求DTO
type KeywordSearchRequest struct {
	Keyword string // 可为空,为空时分页返回全部
	Page    PageRequest
}

// ConditionSearchRequest 组合条件搜索请求DTO
// 三个条件均可选,任意子集(含空集)都合法,非空条件按AND组合
type ConditionSearchRequest struct {
	Title    string // 书名包含
	Author   string // 作者包含
	Category string // 分类等于
	Page     PageRequest
}

// PageResult 分页结果DTO
type PageResult struct {
	List     []BookDTO
	Total    int64
	Page     int
	PageSize int
}

// Keyword 执行关键词搜索
func (uc *SearchBooksUseCase) Keyword(ctx context.Context, req KeywordSearchRequest) (*PageResult, error) {
	page := normalizePage(req.Page)

	books, total, err := uc.bookService.SearchByKeyword(ctx, req.Keyword, page)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		List:     toBookDTOs(books),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// Conditions 执行组合条件搜索
func (uc *SearchBooksUseCase) Conditions(ctx context.Context, req ConditionSearchRequest) (*PageResult, error) {
	page := normalizePage(req.Page)

	books, total, err := uc.bookService.SearchByConditions(ctx, req.Title, req.Author, req.Category, page)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		List:     toBookDTOs(books),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

// normalizePage 分页参数默认值与范围限制
func normalizePage(req PageRequest) book.PageRequest {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10 // 默认每页10条
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // 最大每页100条
	}
	if req.Sort == "" {
		req.Sort = "created_at"
	}
	if req.Order == "" {
		req.Order = "desc"
	}

	return book.PageRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Sort:     req.Sort,
		Order:    req.Order,
	}
}
