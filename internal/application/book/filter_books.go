package book

import (
	"context"

	"github.com/dgsw/bookice/internal/domain/book"
)

// FilterBooksUseCase 单条件搜索用例(不分页)
// 书名/作者模糊匹配,分类精确匹配,价格闭区间
type FilterBooksUseCase struct {
	bookService book.Service
}

// NewFilterBooksUseCase 创建单条件搜索用例
func NewFilterBooksUseCase(bookService book.Service) *FilterBooksUseCase {
	return &FilterBooksUseCase{
		bookService: bookService,
	}
}

// ByTitle 书名搜索
func (uc *FilterBooksUseCase) ByTitle(ctx context.Context, title string) ([]BookDTO, error) {
	books, err := uc.bookService.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// ByAuthor 作者搜索
func (uc *FilterBooksUseCase) ByAuthor(ctx context.Context, author string) ([]BookDTO, error) {
	books, err := uc.bookService.SearchByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// ByCategory 分类搜索
func (uc *FilterBooksUseCase) ByCategory(ctx context.Context, category string) ([]BookDTO, error) {
	books, err := uc.bookService.SearchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// ByPriceRange 价格区间搜索
// 区间倒置(min>max)不报错,返回空列表
func (uc *FilterBooksUseCase) ByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]BookDTO, error) {
	books, err := uc.bookService.SearchByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}
