//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 设计说明:
// 1. Wire在编译期生成依赖组装代码,零运行时开销
// 2. 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
// 3. main.go中的手动组装与此处的依赖链保持一致

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/dgsw/bookice/internal/application/book"
	"github.com/dgsw/bookice/internal/domain/book"
	"github.com/dgsw/bookice/internal/infrastructure/config"
	"github.com/dgsw/bookice/internal/infrastructure/persistence/mysql"
	"github.com/dgsw/bookice/internal/interface/http/handler"
	"github.com/dgsw/bookice/internal/interface/http/middleware"
	"github.com/dgsw/bookice/pkg/metrics"
	"github.com/dgsw/bookice/pkg/response"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository, // 图书仓储
	mysql.NewTxManager,      // 事务管理器
	wire.Bind(new(appbook.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewListInStockUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewFilterBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewAdjustStockUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler, // 图书处理器
)

// provideGinEngine 创建并配置Gin引擎
// 路由注册集中在这里,与main.go的registerRoutes保持同步
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong", gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	books := r.Group("/api/books")
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)

		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/search/advanced", bookHandler.SearchBooksAdvanced)
		books.GET("/search/title", bookHandler.SearchByTitle)
		books.GET("/search/author", bookHandler.SearchByAuthor)
		books.GET("/search/category", bookHandler.SearchByCategory)
		books.GET("/search/price", bookHandler.SearchByPriceRange)

		books.GET("/in-stock", bookHandler.ListInStock)
		books.POST("/:id/stock/increase", bookHandler.IncreaseStock)
		books.POST("/:id/stock/decrease", bookHandler.DecreaseStock)
	}

	return r
}

// InitializeApp 初始化整个应用
// wire.Build声明依赖链,wire生成wire_gen.go完成组装
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
