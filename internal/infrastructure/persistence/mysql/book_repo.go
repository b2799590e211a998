package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dgsw/bookice/internal/domain/book"
	apperrors "github.com/dgsw/bookice/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复键),转换为业务错误
// 4. 所有方法通过getDB(ctx)取DB,自动参与TxManager开启的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		// ISBN唯一索引冲突 → 业务错误
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与数据库时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 查询全部图书(按创建时间升序,保持插入顺序稳定)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.getDB(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// Search 动态条件分页查询
// 设计说明:
// 1. 每个非空条件追加一个AND子句,全部为空时退化为"匹配所有"
// 2. Keyword对书名/作者模糊匹配;Title/Author模糊匹配;Category精确匹配
// 3. 排序字段走白名单,非法值回落created_at DESC,避免SQL注入
// 4. 排序追加id作次级键,保证同一查询同一页请求返回相同切片
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.getDB(ctx).Model(&BookModel{})

	// 1. 动态拼接过滤条件
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", keyword, keyword)
	}
	if params.Title != "" {
		query = query.Where("title LIKE ?", "%"+params.Title+"%")
	}
	if params.Author != "" {
		query = query.Where("author LIKE ?", "%"+params.Author+"%")
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	// 2. 查询总数(分页前)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 3. 排序(白名单) + 分页
	query = query.Order(orderClause(params.Page.Sort, params.Page.Order))

	offset := (params.Page.Page - 1) * params.Page.PageSize
	query = query.Limit(params.Page.PageSize).Offset(offset)

	// 4. 查询数据
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), total, nil
}

// FindByTitle 书名模糊匹配
func (r *bookRepository) FindByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Where("title LIKE ?", "%"+title+"%").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "书名搜索失败")
	}
	return toBookEntities(models), nil
}

// FindByAuthor 作者模糊匹配
func (r *bookRepository) FindByAuthor(ctx context.Context, author string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Where("author LIKE ?", "%"+author+"%").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "作者搜索失败")
	}
	return toBookEntities(models), nil
}

// FindByCategory 分类精确匹配
func (r *bookRepository) FindByCategory(ctx context.Context, category string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Where("category = ?", category).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "分类搜索失败")
	}
	return toBookEntities(models), nil
}

// FindByPriceRange 价格区间查询(两端闭区间)
func (r *bookRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).
		Where("price >= ? AND price <= ?", minPrice, maxPrice).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "价格区间搜索失败")
	}
	return toBookEntities(models), nil
}

// FindInStock 查询有库存的图书
func (r *bookRepository) FindInStock(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Where("stock_quantity >= ?", 1).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "库存查询失败")
	}
	return toBookEntities(models), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt

	// 使用Save更新所有字段
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(物理删除)
// 单条DELETE语句本身是原子的:0行受影响即视为不存在
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// LockByID 悲观锁查询图书
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问该行
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换与排序白名单
// =========================================

// sortColumns 允许的排序字段白名单
var sortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"title":      "title",
}

// orderClause 构建ORDER BY子句
// 默认按创建时间降序;追加id作为次级排序键保证分页稳定
func orderClause(sort, order string) string {
	column, ok := sortColumns[sort]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}

	return column + " " + direction + ", id " + direction
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	isbn := ""
	if model.ISBN != nil {
		isbn = *model.ISBN
	}
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		Category:      model.Category,
		Publisher:     model.Publisher,
		ISBN:          isbn,
		Price:         model.Price,
		StockQuantity: model.StockQuantity,
		Description:   model.Description,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// toBookEntities GORM模型切片 → 领域实体切片
func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// toBookModel 领域实体 → GORM模型
// 空ISBN存NULL,让唯一索引只约束真正填写了ISBN的图书
func toBookModel(b *book.Book) *BookModel {
	var isbn *string
	if b.ISBN != "" {
		v := b.ISBN
		isbn = &v
	}
	return &BookModel{
		Title:         b.Title,
		Author:        b.Author,
		Category:      b.Category,
		Publisher:     b.Publisher,
		ISBN:          isbn,
		Price:         b.Price,
		StockQuantity: b.StockQuantity,
		Description:   b.Description,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 事务传递机制:TxManager.Transaction会把事务DB注入context
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
