package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/dgsw/bookice/internal/application/book"
	"github.com/dgsw/bookice/internal/interface/http/dto"
	apperrors "github.com/dgsw/bookice/pkg/errors"
	"github.com/dgsw/bookice/pkg/metrics"
	"github.com/dgsw/bookice/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. 参数绑定与格式校验在这一层完成,业务规则校验在领域层
// 2. 每个接口的流程固定:绑定 → 调用应用层用例 → 封装响应
type BookHandler struct {
	createBook  *appbook.CreateBookUseCase
	getBook     *appbook.GetBookUseCase
	listBooks   *appbook.ListBooksUseCase
	listInStock *appbook.ListInStockUseCase
	searchBooks *appbook.SearchBooksUseCase
	filterBooks *appbook.FilterBooksUseCase
	updateBook  *appbook.UpdateBookUseCase
	deleteBook  *appbook.DeleteBookUseCase
	adjustStock *appbook.AdjustStockUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	getBook *appbook.GetBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	listInStock *appbook.ListInStockUseCase,
	searchBooks *appbook.SearchBooksUseCase,
	filterBooks *appbook.FilterBooksUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	adjustStock *appbook.AdjustStockUseCase,
) *BookHandler {
	return &BookHandler{
		createBook:  createBook,
		getBook:     getBook,
		listBooks:   listBooks,
		listInStock: listInStock,
		searchBooks: searchBooks,
		filterBooks: filterBooks,
		updateBook:  updateBook,
		deleteBook:  deleteBook,
		adjustStock: adjustStock,
	}
}

// CreateBook 登记图书
// @Summary      图书登记
// @Description  登记一本新图书;isbn可选,提供时必须全局唯一
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误或ISBN重复"
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		Publisher:     req.Publisher,
		ISBN:          req.ISBN,
		Price:         *req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.BooksCreatedTotal.Inc()
	response.Created(c, "图书登记成功", result)
}

// GetBook 图书单条查询
// @Summary      图书单条查询
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=book.BookDTO}
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "图书查询成功", result)
}

// ListBooks 全部图书列表
// @Summary      全部图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooks.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "图书列表查询成功", result)
}

// SearchBooks 关键词分页搜索
// @Summary      关键词搜索
// @Description  书名或作者包含关键词;keyword省略时分页返回全部
// @Tags         图书搜索
// @Produce      json
// @Param        keyword query string false "关键词"
// @Param        page query int false "页码" default(1)
// @Param        size query int false "每页数量" default(10)
// @Param        sort query string false "排序字段(created_at|price|title)"
// @Param        order query string false "排序方向(asc|desc)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var q dto.KeywordSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.searchBooks.Keyword(c.Request.Context(), appbook.KeywordSearchRequest{
		Keyword: q.Keyword,
		Page:    toPageRequest(q.PageQuery),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, "图书搜索成功", result.List, result.Total, result.Page, result.PageSize)
}

// SearchBooksAdvanced 组合条件分页搜索
// @Summary      组合条件搜索
// @Description  title/author模糊匹配,category精确匹配;非空条件按AND组合,全部省略时分页返回全部
// @Tags         图书搜索
// @Produce      json
// @Param        title query string false "书名包含"
// @Param        author query string false "作者包含"
// @Param        category query string false "分类等于"
// @Param        page query int false "页码" default(1)
// @Param        size query int false "每页数量" default(10)
// @Param        sort query string false "排序字段(created_at|price|title)"
// @Param        order query string false "排序方向(asc|desc)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search/advanced [get]
func (h *BookHandler) SearchBooksAdvanced(c *gin.Context) {
	var q dto.ConditionSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.searchBooks.Conditions(c.Request.Context(), appbook.ConditionSearchRequest{
		Title:    q.Title,
		Author:   q.Author,
		Category: q.Category,
		Page:     toPageRequest(q.PageQuery),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, "图书搜索成功", result.List, result.Total, result.Page, result.PageSize)
}

// SearchByTitle 书名搜索
// @Summary      书名搜索
// @Tags         图书搜索
// @Produce      json
// @Param        title query string true "书名包含"
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search/title [get]
func (h *BookHandler) SearchByTitle(c *gin.Context) {
	var q dto.TitleSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.filterBooks.ByTitle(c.Request.Context(), q.Title)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "书名搜索成功", result)
}

// SearchByAuthor 作者搜索
// @Summary      作者搜索
// @Tags         图书搜索
// @Produce      json
// @Param        author query string true "作者包含"
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search/author [get]
func (h *BookHandler) SearchByAuthor(c *gin.Context) {
	var q dto.AuthorSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.filterBooks.ByAuthor(c.Request.Context(), q.Author)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "作者搜索成功", result)
}

// SearchByCategory 分类搜索
// @Summary      分类搜索
// @Tags         图书搜索
// @Produce      json
// @Param        category query string true "分类等于"
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search/category [get]
func (h *BookHandler) SearchByCategory(c *gin.Context) {
	var q dto.CategorySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.filterBooks.ByCategory(c.Request.Context(), q.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "分类搜索成功", result)
}

// SearchByPriceRange 价格区间搜索
// @Summary      价格区间搜索
// @Description  minPrice <= price <= maxPrice,两端闭区间;区间倒置返回空列表
// @Tags         图书搜索
// @Produce      json
// @Param        minPrice query int true "最低价格"
// @Param        maxPrice query int true "最高价格"
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Router       /api/books/search/price [get]
func (h *BookHandler) SearchByPriceRange(c *gin.Context) {
	var q dto.PriceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.filterBooks.ByPriceRange(c.Request.Context(), *q.MinPrice, *q.MaxPrice)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "价格区间搜索成功", result)
}

// ListInStock 有库存图书列表
// @Summary      有库存图书列表
// @Description  只返回库存>=1的图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]book.BookDTO}
// @Router       /api/books/in-stock [get]
func (h *BookHandler) ListInStock(c *gin.Context) {
	result, err := h.listInStock.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "有库存图书查询成功", result)
}

// UpdateBook 图书信息修改
// @Summary      图书信息修改
// @Description  整体替换基本信息;isbn与库存不可通过此接口修改
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.updateBook.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Publisher:   req.Publisher,
		Price:       *req.Price,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "图书修改成功", result)
}

// DeleteBook 图书删除
// @Summary      图书删除
// @Description  物理删除,删除后再次查询返回404
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	metrics.BooksDeletedTotal.Inc()
	response.Success(c, "图书删除成功", nil)
}

// IncreaseStock 库存增加
// @Summary      库存增加
// @Tags         库存
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        quantity query int true "增加数量(>=1)"
// @Success      200 {object} response.Response{data=book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /api/books/{id}/stock/increase [post]
func (h *BookHandler) IncreaseStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var q dto.StockAdjustQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.adjustStock.Increase(c.Request.Context(), id, *q.Quantity)
	if err != nil {
		metrics.StockAdjustmentsTotal.WithLabelValues("increase", "failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.StockAdjustmentsTotal.WithLabelValues("increase", "success").Inc()
	response.Success(c, "库存已增加", result)
}

// DecreaseStock 库存扣减
// @Summary      库存扣减
// @Description  扣减数量大于当前库存时返回400(库存不足),库存不变
// @Tags         库存
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        quantity query int true "扣减数量(>=1)"
// @Success      200 {object} response.Response{data=book.BookDTO}
// @Failure      400 {object} response.ErrorResponse "参数错误或库存不足"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /api/books/{id}/stock/decrease [post]
func (h *BookHandler) DecreaseStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var q dto.StockAdjustQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.adjustStock.Decrease(c.Request.Context(), id, *q.Quantity)
	if err != nil {
		metrics.StockAdjustmentsTotal.WithLabelValues("decrease", "failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.StockAdjustmentsTotal.WithLabelValues("decrease", "success").Inc()
	response.Success(c, "库存已扣减", result)
}

// =========================================
// 辅助函数
// =========================================

// parseID 解析路径中的图书ID
// 解析失败时直接写入400响应并返回ok=false
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的图书ID"))
		return 0, false
	}
	return uint(id), true
}

// toPageRequest HTTP分页参数 → 应用层分页DTO
func toPageRequest(q dto.PageQuery) appbook.PageRequest {
	return appbook.PageRequest{
		Page:     q.Page,
		PageSize: q.Size,
		Sort:     q.Sort,
		Order:    q.Order,
	}
}
