package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appmw "carprice_backend/internal/app/middleware"
	authhandler "carprice_backend/internal/feature/auth/transport/handler"
	authmw "carprice_backend/internal/feature/auth/transport/middleware"
	"carprice_backend/internal/feature/catalog"
	"carprice_backend/internal/feature/pages"
	predicthandler "carprice_backend/internal/feature/pricing/transport/handler"
	"carprice_backend/internal/platform/http/handler"
)

func NewRouter(sessions authmw.SessionValidator, auth *authhandler.AuthHandler,
	predict *predicthandler.PredictHandler, page *pages.Handler, brands *catalog.Handler) *gin.Engine {
	r := gin.Default()
	r.Use(appmw.Metrics())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// ログイン・サインアップ
	r.GET("/login", auth.LoginPage)
	r.POST("/login", auth.Login)
	r.POST("/signup", auth.Signup)
	r.POST("/api/login", auth.APILogin)
	r.GET("/logout", auth.Logout)

	// 認証必須のHTMLページ
	gated := r.Group("/")
	gated.Use(authmw.PageAuthRequired(sessions))
	{
		gated.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/home") })
		gated.GET("/home", page.Home)
		gated.GET("/predict_page", page.PredictPage)
		gated.GET("/compare", page.ComparePage)
		gated.POST("/compare", page.Compare)
		gated.GET("/analysis", page.Analysis)
		gated.GET("/contact", page.ContactPage)
		gated.POST("/contact", page.Contact)
	}

	// 認証必須のJSON API（セッションクッキーまたはBearer JWT）
	api := r.Group("/api")
	api.Use(authmw.APIAuthRequired(sessions))
	{
		api.POST("/predict", predict.APIPredict)
		api.GET("/brands", brands.List)
	}

	return r
}
