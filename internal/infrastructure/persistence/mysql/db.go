package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dgsw/bookice/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate，生产环境应使用专门的迁移工具）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,domain/book/entity.go是领域实体,
//    Repository负责两者之间的转换
// 2. ISBN使用指针类型:未填写时存NULL,唯一索引只约束非NULL值,
//    允许多本图书都不带ISBN
// 3. 图书为物理删除,不保留DeletedAt字段
// 4. 复合索引优化搜索(title/author)与列表排序(price/created_at)
type BookModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author        string    `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Category      string    `gorm:"index;size:50;not null;comment:分类"`
	Publisher     string    `gorm:"size:100;comment:出版社"`
	ISBN          *string   `gorm:"uniqueIndex;size:20;comment:ISBN号"`
	Price         int       `gorm:"index:idx_list;not null;comment:价格"`
	StockQuantity int       `gorm:"not null;default:0;comment:库存数量"`
	Description   string    `gorm:"type:text;comment:图书描述"`
	CreatedAt     time.Time `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
