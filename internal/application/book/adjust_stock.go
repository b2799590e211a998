package book

import (
	"context"
	"log"

	"github.com/dgsw/bookice/internal/domain/book"
)

// AdjustStockUseCase 库存调整用例
// 核心问题:并发调整导致丢失更新
// 场景:库存10,两个请求同时扣5
// 错误实现:各自读到10,各自写回5,最终库存5(丢了一次扣减)
// 正确实现:事务内SELECT FOR UPDATE锁定行,串行化同一图书的调整
type AdjustStockUseCase struct {
	bookService book.Service
	txManager   Transactor
}

// NewAdjustStockUseCase 创建库存调整用例
func NewAdjustStockUseCase(bookService book.Service, txManager Transactor) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Increase 增加库存
// quantity必须>0(HTTP层绑定校验+实体二次校验)
func (uc *AdjustStockUseCase) Increase(ctx context.Context, id uint, quantity int) (*BookDTO, error) {
	log.Printf("库存增加请求: id=%d, quantity=%d", id, quantity)

	var result *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.IncreaseStock(txCtx, id, quantity)
		if err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("库存增加完成: id=%d, 当前库存=%d", result.ID, result.StockQuantity)
	return toBookDTO(result), nil
}

// Decrease 扣减库存
// quantity大于当前库存时返回ErrInsufficientStock,事务回滚,库存不变
func (uc *AdjustStockUseCase) Decrease(ctx context.Context, id uint, quantity int) (*BookDTO, error) {
	log.Printf("库存扣减请求: id=%d, quantity=%d", id, quantity)

	var result *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.DecreaseStock(txCtx, id, quantity)
		if err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("库存扣减完成: id=%d, 当前库存=%d", result.ID, result.StockQuantity)
	return toBookDTO(result), nil
}
