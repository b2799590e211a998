package book

import (
	"context"
	"log"

	"github.com/dgsw/bookice/internal/domain/book"
)

// DeleteBookUseCase 图书删除用例(物理删除)
// 删除本身是单条DELETE语句,存在性检查与删除天然原子,无需显式事务
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行删除用例,不存在返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	log.Printf("图书删除请求: id=%d", id)

	if err := uc.bookService.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("图书删除完成: id=%d", id)
	return nil
}
