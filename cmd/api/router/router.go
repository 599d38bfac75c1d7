package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"influence-os/cmd/api/handlers"
	"influence-os/cmd/api/middleware"
	"influence-os/cmd/api/services"
	"influence-os/config"
	_ "influence-os/docs"
)

// New assembles the gin engine: recovery, request tracing, CORS for the
// frontend origins, swagger, and the API routes over the injected services.
func New(cfg config.AppConfig, postSvc *services.PostService, authSvc *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	r.GET("/", handlers.RootHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/posts", handlers.ListPostsHandler(postSvc))
	r.POST("/generate-post", handlers.GeneratePostHandler(postSvc))

	r.GET("/auth/linkedin", handlers.LinkedInLoginHandler(authSvc))
	r.GET("/auth/linkedin/callback", handlers.LinkedInCallbackHandler(authSvc))

	r.GET("/users/me", handlers.GetMeHandler(authSvc))
	r.POST("/posts/share", handlers.SharePostHandler(authSvc))

	return r
}

// corsMiddleware adapts rs/cors to gin, terminating preflight requests.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Origin", "Accept"},
		AllowCredentials: true,
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions &&
			ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
