package book

import "context"

// Transactor 事务边界抽象
// 设计说明:
// 1. 应用层只声明"这段逻辑需要在事务里跑",不关心事务如何实现
// 2. 生产实现是mysql.TxManager,测试中可替换为直通实现
// 3. fn返回error时回滚,返回nil时提交
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
