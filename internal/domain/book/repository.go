package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 所有方法都接受context,事务DB通过context传递(见mysql.TxManager)
type Repository interface {
	// Create 创建图书,成功后回填ID与时间戳
	// ISBN非空且已存在时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书,不存在返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindAll 查询全部图书(按创建时间升序,保持插入顺序稳定)
	FindAll(ctx context.Context) ([]*Book, error)

	// Search 动态条件分页查询(见SearchParams)
	// 返回当前页数据与总记录数
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// FindByTitle 书名模糊匹配(不分页)
	FindByTitle(ctx context.Context, title string) ([]*Book, error)

	// FindByAuthor 作者模糊匹配(不分页)
	FindByAuthor(ctx context.Context, author string) ([]*Book, error)

	// FindByCategory 分类精确匹配(不分页)
	FindByCategory(ctx context.Context, category string) ([]*Book, error)

	// FindByPriceRange 价格区间查询,两端都是闭区间
	FindByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*Book, error)

	// FindInStock 查询有库存的图书(stock_quantity >= 1)
	FindInStock(ctx context.Context) ([]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(物理删除),不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
	// 用于库存调整,必须在事务内调用,防止并发丢失更新
	LockByID(ctx context.Context, id uint) (*Book, error)
}

// PageRequest 分页与排序参数
// Sort取值:created_at | price | title(仓储层白名单校验,非法值回落默认)
// Order取值:asc | desc,默认按创建时间降序
type PageRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Sort     string // 排序字段
	Order    string // 排序方向
}

// SearchParams 动态查询参数
// 设计说明:
// 1. 每个非空字段贡献一个AND条件,全部为空时退化为"匹配所有"
// 2. Keyword对书名/作者做模糊匹配(关键词搜索入口)
// 3. Title/Author模糊匹配,Category精确匹配(组合条件搜索入口)
type SearchParams struct {
	Keyword  string // 关键词(书名或作者包含)
	Title    string // 书名包含
	Author   string // 作者包含
	Category string // 分类等于
	Page     PageRequest
}
