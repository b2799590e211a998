package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装实体级业务规则校验(ISBN唯一、存在性检查、库存不变式)
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 涉及"检查-再修改"的方法(Update/IncreaseStock/DecreaseStock)必须在
//    事务上下文中调用,事务边界由应用层的TxManager提供
type Service interface {
	// Create 登记图书
	// 业务规则:ISBN非空时不能与已有图书重复
	Create(ctx context.Context, title, author, category, publisher, isbn string, price, stockQuantity int, description string) (*Book, error)

	// GetByID 根据ID获取图书详情,不存在返回ErrBookNotFound
	GetByID(ctx context.Context, id uint) (*Book, error)

	// ListAll 查询全部图书
	ListAll(ctx context.Context) ([]*Book, error)

	// SearchByKeyword 关键词分页搜索(书名或作者包含关键词)
	// keyword为空时返回全部图书的分页结果
	SearchByKeyword(ctx context.Context, keyword string, page PageRequest) ([]*Book, int64, error)

	// SearchByConditions 组合条件分页搜索
	// title/author模糊匹配,category精确匹配,非空条件按AND组合
	SearchByConditions(ctx context.Context, title, author, category string, page PageRequest) ([]*Book, int64, error)

	// SearchByTitle 书名搜索(不分页)
	SearchByTitle(ctx context.Context, title string) ([]*Book, error)

	// SearchByAuthor 作者搜索(不分页)
	SearchByAuthor(ctx context.Context, author string) ([]*Book, error)

	// SearchByCategory 分类搜索(不分页)
	SearchByCategory(ctx context.Context, category string) ([]*Book, error)

	// SearchByPriceRange 价格区间搜索,闭区间
	// 不校验minPrice<=maxPrice:区间倒置返回空列表
	SearchByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*Book, error)

	// ListInStock 查询有库存的图书
	ListInStock(ctx context.Context) ([]*Book, error)

	// Update 整体替换图书信息(ISBN与库存不变)
	Update(ctx context.Context, id uint, title, author, category, publisher string, price int, description string) (*Book, error)

	// Delete 删除图书(物理删除)
	Delete(ctx context.Context, id uint) error

	// IncreaseStock 增加库存,quantity必须>0
	IncreaseStock(ctx context.Context, id uint, quantity int) (*Book, error)

	// DecreaseStock 扣减库存
	// quantity必须>0;quantity大于当前库存时返回ErrInsufficientStock且库存不变
	DecreaseStock(ctx context.Context, id uint, quantity int) (*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 登记图书
func (s *service) Create(ctx context.Context, title, author, category, publisher, isbn string, price, stockQuantity int, description string) (*Book, error) {
	// 1. ISBN唯一性预检查(仅在提供了ISBN时)
	// 并发窗口由数据库唯一索引兜底,Repository会把重复键错误转为ErrISBNDuplicate
	if isbn != "" {
		existing, err := s.repo.FindByISBN(ctx, isbn)
		if err == nil && existing != nil {
			return nil, ErrISBNDuplicate
		}
		if err != nil && !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	}

	// 2. 创建图书实体并持久化
	b := NewBook(title, author, category, publisher, isbn, price, stockQuantity, description)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetByID 根据ID获取图书
func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll 查询全部图书
func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// SearchByKeyword 关键词分页搜索
func (s *service) SearchByKeyword(ctx context.Context, keyword string, page PageRequest) ([]*Book, int64, error) {
	return s.repo.Search(ctx, SearchParams{
		Keyword: keyword,
		Page:    page,
	})
}

// SearchByConditions 组合条件分页搜索
func (s *service) SearchByConditions(ctx context.Context, title, author, category string, page PageRequest) ([]*Book, int64, error) {
	return s.repo.Search(ctx, SearchParams{
		Title:    title,
		Author:   author,
		Category: category,
		Page:     page,
	})
}

// SearchByTitle 书名搜索
func (s *service) SearchByTitle(ctx context.Context, title string) ([]*Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

// SearchByAuthor 作者搜索
func (s *service) SearchByAuthor(ctx context.Context, author string) ([]*Book, error) {
	return s.repo.FindByAuthor(ctx, author)
}

// SearchByCategory 分类搜索
func (s *service) SearchByCategory(ctx context.Context, category string) ([]*Book, error) {
	return s.repo.FindByCategory(ctx, category)
}

// SearchByPriceRange 价格区间搜索
func (s *service) SearchByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*Book, error) {
	return s.repo.FindByPriceRange(ctx, minPrice, maxPrice)
}

// ListInStock 查询有库存的图书
func (s *service) ListInStock(ctx context.Context) ([]*Book, error) {
	return s.repo.FindInStock(ctx)
}

// Update 整体替换图书信息
func (s *service) Update(ctx context.Context, id uint, title, author, category, publisher string, price int, description string) (*Book, error) {
	// 1. 存在性检查
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 实体行为:整体替换基本信息,刷新UpdatedAt
	if err := b.Update(title, author, category, publisher, price, description); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, id uint) error {
	// Repository的Delete本身是单条语句,0行受影响即视为不存在
	return s.repo.Delete(ctx, id)
}

// IncreaseStock 增加库存
// 必须在事务内执行:LockByID锁定行,防止并发调整造成丢失更新
func (s *service) IncreaseStock(ctx context.Context, id uint, quantity int) (*Book, error) {
	b, err := s.repo.LockByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.IncreaseStock(quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DecreaseStock 扣减库存
// 必须在事务内执行,锁定后校验库存是否充足
func (s *service) DecreaseStock(ctx context.Context, id uint, quantity int) (*Book, error) {
	b, err := s.repo.LockByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.DecreaseStock(quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
