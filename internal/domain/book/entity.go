package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是图书目录的核心实体,包含图书的全部业务属性
// 2. ISBN是可选的业务唯一标识:未填写时为空串,填写后全局唯一且创建后不可修改
// 3. Price为非负整数,StockQuantity为非负整数(每次库存变更都校验,不只在创建时)
// 4. CreatedAt创建时设置一次,UpdatedAt随每次变更刷新
type Book struct {
	ID            uint
	Title         string // 书名
	Author        string // 作者
	Category      string // 分类
	Publisher     string // 出版社(可选)
	ISBN          string // ISBN号(可选,非空时全局唯一)
	Price         int    // 价格(非负整数)
	StockQuantity int    // 库存数量(非负)
	Description   string // 图书描述(可选)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段约束由调用方(DTO绑定校验)保证,ID与时间戳由持久化层回填
func NewBook(title, author, category, publisher, isbn string, price, stockQuantity int, description string) *Book {
	now := time.Now()
	return &Book{
		Title:         title,
		Author:        author,
		Category:      category,
		Publisher:     publisher,
		ISBN:          isbn,
		Price:         price,
		StockQuantity: stockQuantity,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Update 整体替换图书基本信息(领域行为)
// 业务规则:
// - title/author/category/price必填(由DTO校验),publisher/description可为空并会被覆盖
// - ISBN与StockQuantity不在更新范围内
func (b *Book) Update(title, author, category, publisher string, price int, description string) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	b.Title = title
	b.Author = author
	b.Category = category
	b.Publisher = publisher
	b.Price = price
	b.Description = description
	b.UpdatedAt = time.Now()
	return nil
}

// IncreaseStock 增加库存(用于补货)
// 业务规则:数量必须>0
func (b *Book) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.StockQuantity += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// DecreaseStock 扣减库存
// 业务规则:数量必须>0,扣减后库存不能为负数
func (b *Book) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.StockQuantity < quantity {
		return ErrInsufficientStock
	}
	b.StockQuantity -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// InStock 是否有库存(库存>=1)
func (b *Book) InStock() bool {
	return b.StockQuantity >= 1
}
