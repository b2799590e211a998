package book

import (
	"context"
	"log"

	"github.com/dgsw/bookice/internal/domain/book"
)

// UpdateBookUseCase 图书信息修改用例
// 设计说明:
// 1. 整体替换title/author/category/publisher/price/description,
//    ISBN与库存不在修改范围内
// 2. "存在性检查→修改"必须在同一事务中执行,
//    防止并发删除造成检查与写入之间的竞态
type UpdateBookUseCase struct {
	bookService book.Service
	txManager   Transactor
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service, txManager Transactor) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// UpdateBookRequest 修改请求DTO
// 所有字段整体替换(非PATCH语义),publisher/description可为空
type UpdateBookRequest struct {
	Title       string
	Author      string
	Category    string
	Publisher   string
	Price       int
	Description string
}

// Execute 执行修改用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDTO, error) {
	log.Printf("图书修改请求: id=%d", id)

	var result *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.Update(
			txCtx,
			id,
			req.Title,
			req.Author,
			req.Category,
			req.Publisher,
			req.Price,
			req.Description,
		)
		if err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("图书修改完成: id=%d, title=%s", result.ID, result.Title)
	return toBookDTO(result), nil
}
