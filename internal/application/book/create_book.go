package book

import (
	"context"
	"log"

	"github.com/dgsw/bookice/internal/domain/book"
)

// CreateBookUseCase 图书登记用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 字段格式校验(必填、长度)由HTTP层的DTO绑定完成,
//    业务规则校验(ISBN重复)由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建登记用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 登记请求DTO
type CreateBookRequest struct {
	Title         string // 书名
	Author        string // 作者
	Category      string // 分类
	Publisher     string // 出版社(可选)
	ISBN          string // ISBN号(可选,非空时全局唯一)
	Price         int    // 价格
	StockQuantity int    // 初始库存(缺省0)
	Description   string // 图书描述(可选)
}

// Execute 执行登记用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	log.Printf("图书登记请求: title=%s", req.Title)

	b, err := uc.bookService.Create(
		ctx,
		req.Title,
		req.Author,
		req.Category,
		req.Publisher,
		req.ISBN,
		req.Price,
		req.StockQuantity,
		req.Description,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("图书登记完成: id=%d, title=%s", b.ID, b.Title)
	return toBookDTO(b), nil
}
