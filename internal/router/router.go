package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rejoanafridi/my-porfolio-sub000/internal/handler"
)

// Setup 配置 Gin 引擎和路由
func Setup(api *handler.API, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	// 本地上传文件的静态服务
	if uploadDir != "" && uploadURLPath != "" {
		r.Static(uploadURLPath, uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/login", api.Login)
		apiGroup.POST("/auth/logout", api.Logout)

		// 公共读取
		apiGroup.GET("/site", api.GetSite)
		apiGroup.GET("/site/:section", api.GetSection)
		apiGroup.GET("/site/:section/html", api.GetSectionHTML)
		apiGroup.GET("/siteConfig", api.GetSiteConfig)

		// 写入端点要求管理员会话
		admin := apiGroup.Group("")
		admin.Use(handler.AuthRequired(), handler.AdminRequired())
		{
			admin.PUT("/site", api.UpdateSite)
			admin.PUT("/site/:section", api.UpdateSection)
			admin.PUT("/siteConfig", api.UpdateSiteConfig)
			admin.POST("/upload", api.Upload)
		}
	}

	return r
}
