package book

import (
	"context"

	"github.com/dgsw/bookice/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例(不分页)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// Execute 查询全部图书
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookDTO, error) {
	books, err := uc.bookService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// ListInStockUseCase 有库存图书查询用例
type ListInStockUseCase struct {
	bookService book.Service
}

// NewListInStockUseCase 创建有库存查询用例
func NewListInStockUseCase(bookService book.Service) *ListInStockUseCase {
	return &ListInStockUseCase{
		bookService: bookService,
	}
}

// Execute 查询库存>=1的图书
func (uc *ListInStockUseCase) Execute(ctx context.Context) ([]BookDTO, error) {
	books, err := uc.bookService.ListInStock(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}
