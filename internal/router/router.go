package router

import (
	"github.com/eneso-link/internal/config"
	publichandlers "github.com/eneso-link/internal/http/handlers/public"
	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 短链跳转入口
	r.GET("/l/:code", publicHandler.Redirect)

	// API 路由组
	api := r.Group("/api")
	{
		api.GET("/categories", publicHandler.ListCategories)
		api.GET("/links/:id", publicHandler.GetLink)
		api.GET("/lists", publicHandler.ListLists)
		api.GET("/lists/:slug", publicHandler.GetList)
		api.POST("/lists/:slug/click", publicHandler.TrackListClick)
		api.GET("/profile", publicHandler.GetProfile)
	}

	return r
}
