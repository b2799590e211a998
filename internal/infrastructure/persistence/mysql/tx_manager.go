package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的键
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 仓储的getDB方法从context提取事务DB,同一事务内的所有操作共享连接
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(txCtx context.Context) error {
//	    // 1. 锁定图书行
//	    b, err := bookRepo.LockByID(txCtx, id)
//	    if err != nil {
//	        return err
//	    }
//	    // 2. 扣减库存并持久化
//	    if err := b.DecreaseStock(quantity); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.Update(txCtx, b)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
