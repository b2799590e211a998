package book

import (
	"github.com/dgsw/bookice/internal/domain/book"
)

// timeLayout 响应中时间戳的统一格式
const timeLayout = "2006-01-02 15:04:05"

// BookDTO 图书表示(应用层输出DTO)
// 设计说明:
// 1. 应用层的输入输出使用DTO,与HTTP层、领域实体解耦
// 2. 单条查询与列表查询共用同一表示(字段较少,无需裁剪)
type BookDTO struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	Publisher     string `json:"publisher,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// toBookDTO 领域实体 → DTO
func toBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Category:      b.Category,
		Publisher:     b.Publisher,
		ISBN:          b.ISBN,
		Price:         b.Price,
		StockQuantity: b.StockQuantity,
		Description:   b.Description,
		CreatedAt:     b.CreatedAt.Format(timeLayout),
		UpdatedAt:     b.UpdatedAt.Format(timeLayout),
	}
}

// toBookDTOs 实体切片 → DTO切片
func toBookDTOs(books []*book.Book) []BookDTO {
	list := make([]BookDTO, len(books))
	for i, b := range books {
		list[i] = *toBookDTO(b)
	}
	return list
}
