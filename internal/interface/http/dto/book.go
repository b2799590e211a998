package dto

// CreateBookRequest HTTP图书登记请求
// validator tag说明:
// - required: 必填字段(title/author/category/price)
// - max: 长度上限(title 200 / author 100 / category 50 / publisher 100)
// - Price用指针:price=0是合法值,必须与"未提供"区分开
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,max=200" example:"Clean Code"`
	Author        string `json:"author" binding:"required,max=100" example:"Robert C. Martin"`
	Category      string `json:"category" binding:"required,max=50" example:"Programming"`
	Publisher     string `json:"publisher" binding:"omitempty,max=100" example:"Insight"`
	ISBN          string `json:"isbn" binding:"omitempty,max=20" example:"9788966260959"`
	Price         *int   `json:"price" binding:"required,min=0" example:"33000"`
	StockQuantity int    `json:"stockQuantity" binding:"omitempty,min=0" example:"100"` // 缺省0
	Description   string `json:"description" example:"敏捷软件开发的艺术"`
}

// UpdateBookRequest HTTP图书修改请求
// 整体替换语义(非PATCH):title/author/category/price必填,
// publisher/description可为空并会被覆盖;isbn与库存不可通过此接口修改
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"Clean Code(修订版)"`
	Author      string `json:"author" binding:"required,max=100" example:"Robert C. Martin"`
	Category    string `json:"category" binding:"required,max=50" example:"Programming"`
	Publisher   string `json:"publisher" binding:"omitempty,max=100" example:"Insight"`
	Price       *int   `json:"price" binding:"required,min=0" example:"36000"`
	Description string `json:"description" example:"敏捷软件开发的艺术(修订)"`
}

// PageQuery 分页与排序查询参数
// sort取值:created_at|price|title,order取值:asc|desc
// 缺省按创建时间降序,每页10条
type PageQuery struct {
	Page  int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Size  int    `form:"size" binding:"omitempty,min=1,max=100" example:"10"`
	Sort  string `form:"sort" binding:"omitempty,oneof=created_at price title" example:"created_at"`
	Order string `form:"order" binding:"omitempty,oneof=asc desc" example:"desc"`
}

// KeywordSearchQuery 关键词搜索查询参数
// keyword可省略,省略时分页返回全部图书
type KeywordSearchQuery struct {
	Keyword string `form:"keyword" binding:"omitempty,max=100" example:"Clean"`
	PageQuery
}

// ConditionSearchQuery 组合条件搜索查询参数
// 三个条件均可选,非空条件按AND组合
type ConditionSearchQuery struct {
	Title    string `form:"title" binding:"omitempty,max=200" example:"Code"`
	Author   string `form:"author" binding:"omitempty,max=100" example:"Martin"`
	Category string `form:"category" binding:"omitempty,max=50" example:"Programming"`
	PageQuery
}

// TitleSearchQuery 书名搜索查询参数
type TitleSearchQuery struct {
	Title string `form:"title" binding:"required,max=200" example:"Clean"`
}

// AuthorSearchQuery 作者搜索查询参数
type AuthorSearchQuery struct {
	Author string `form:"author" binding:"required,max=100" example:"Martin"`
}

// CategorySearchQuery 分类搜索查询参数
type CategorySearchQuery struct {
	Category string `form:"category" binding:"required,max=50" example:"Programming"`
}

// PriceRangeQuery 价格区间查询参数
// 两端必填且非负,闭区间;不校验minPrice<=maxPrice(区间倒置返回空列表)
type PriceRangeQuery struct {
	MinPrice *int `form:"minPrice" binding:"required,min=0" example:"10000"`
	MaxPrice *int `form:"maxPrice" binding:"required,min=0" example:"50000"`
}

// StockAdjustQuery 库存调整查询参数
// quantity必须>=1,零或负数在绑定阶段直接拒绝
type StockAdjustQuery struct {
	Quantity *int `form:"quantity" binding:"required,min=1" example:"50"`
}
