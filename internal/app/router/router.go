package router

import (
	"github.com/gin-gonic/gin"

	authhandler "coffeeshop_backend/internal/feature/auth/transport/handler"
	menuhandler "coffeeshop_backend/internal/feature/menu/transport/handler"
	newsletterhandler "coffeeshop_backend/internal/feature/newsletter/transport/handler"
	"coffeeshop_backend/internal/interface/handler"
	"coffeeshop_backend/internal/platform/session"
)

func NewRouter(authHandler *authhandler.AuthHandler, menu *menuhandler.MenuHandler,
	newsletter *newsletterhandler.NewsletterHandler, sessions session.Resolver, cookieName string) *gin.Engine {
	r := gin.Default()

	// No session required
	r.GET("/healthz", handler.Health)
	// Newsletter signup from the landing page
	r.POST("/", newsletter.Subscribe)
	// Contact form
	r.POST("/contact", newsletter.Contact)
	// New shop-owner registration
	r.POST("/register", authHandler.Register)
	// Login (issues the session cookie)
	r.POST("/login", authHandler.Login)

	// Session-gated routes: everything below operates on the logged-in
	// owner's own data.
	auth := r.Group("/")
	auth.Use(session.AuthRequired(sessions, cookieName))
	{
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/add", menu.Add)
		auth.POST("/remove", menu.Remove)
		auth.GET("/menu", menu.List)
		auth.POST("/menu", menu.Display)
	}

	return r
}
