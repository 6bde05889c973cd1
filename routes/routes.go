package routes

import (
	"net/http"
	"time"

	accountRepo "medcrew/database/repository/account"
	"medcrew/handlers"
	"medcrew/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers and repositories routes depend on.
type HandlerBundle struct {
	AccountRepo         accountRepo.AccountRepository
	RegistrationHandler *handlers.RegistrationHandler
	ProfileHandler      *handlers.ProfileHandler
	AccountHandler      *handlers.AccountHandler
}

// RegisterRegistrationRoutes registers the registration wizard endpoints.
func RegisterRegistrationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/registration")
	{
		api.POST("/role", hb.RegistrationHandler.SelectRoleHandler)
		api.POST("/advance", hb.RegistrationHandler.AdvanceHandler)
		api.POST("/retreat", hb.RegistrationHandler.RetreatHandler)
		api.POST("/submit", hb.RegistrationHandler.SubmitHandler)
	}
}

// RegisterProfileRoutes registers the checklist and profile-info endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/profile")
	api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
	{
		// Document checklist.
		api.GET("/documents", hb.ProfileHandler.GetDocumentSetHandler)
		api.GET("/documents/record", hb.ProfileHandler.GetDocumentRecordHandler)
		api.PUT("/documents/:key", hb.ProfileHandler.SetDocumentHandler)
		api.POST("/documents/advance", hb.ProfileHandler.AdvanceHandler)
		api.POST("/documents/retreat", hb.ProfileHandler.RetreatHandler)
		api.POST("/documents/submit", hb.ProfileHandler.SubmitHandler)
		api.POST("/documents/finish", hb.ProfileHandler.FinishEarlyHandler)

		// Independent profile-info forms.
		api.POST("/personal", hb.ProfileHandler.SavePersonalInfoHandler)
		api.POST("/professional", hb.ProfileHandler.SaveProfessionalInfoHandler)
		api.POST("/financial", hb.ProfileHandler.SaveFinancialInfoHandler)
	}
}

// RegisterAccountRoutes registers login and account endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/login", hb.AccountHandler.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		protected.GET("/me", hb.AccountHandler.MeHandler)
		protected.POST("/logout", hb.AccountHandler.LogoutHandler)
		protected.PUT("/fcm-token", hb.AccountHandler.UpdateFCMTokenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MedCrew"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRegistrationRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterHealthRoute(r)
}
