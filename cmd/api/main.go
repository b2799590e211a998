package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
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

// @title           图书管理服务 API
// @version         1.0
// @description     图书的登记、查询、搜索、修改、删除与库存管理
// @BasePath        /

// main 主程序入口
// 说明：手动依赖注入（wire.go提供编译期生成的替代方案）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	listInStockUseCase := appbook.NewListInStockUseCase(bookService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)
	filterBooksUseCase := appbook.NewFilterBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, txManager)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	adjustStockUseCase := appbook.NewAdjustStockUseCase(bookService, txManager)

	// 接口层
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		getBookUseCase,
		listBooksUseCase,
		listInStockUseCase,
		searchBooksUseCase,
		filterBooksUseCase,
		updateBookUseCase,
		deleteBookUseCase,
		adjustStockUseCase,
	)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	// 6. 注册路由
	registerRoutes(r, bookHandler)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong", gin.H{"status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块
	books := r.Group("/api/books")
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)

		// 搜索
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/search/advanced", bookHandler.SearchBooksAdvanced)
		books.GET("/search/title", bookHandler.SearchByTitle)
		books.GET("/search/author", bookHandler.SearchByAuthor)
		books.GET("/search/category", bookHandler.SearchByCategory)
		books.GET("/search/price", bookHandler.SearchByPriceRange)

		// 库存
		books.GET("/in-stock", bookHandler.ListInStock)
		books.POST("/:id/stock/increase", bookHandler.IncreaseStock)
		books.POST("/:id/stock/decrease", bookHandler.DecreaseStock)
	}
}
