package book

import (
	"context"

	"github.com/dgsw/bookice/internal/domain/book"
)

// GetBookUseCase 图书单条查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建单条查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 根据ID查询图书,不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDTO, error) {
	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}
