package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fsa-drive/admin-service/internal/config"
	"github.com/fsa-drive/admin-service/internal/directory"
	"github.com/fsa-drive/admin-service/internal/models"
	"github.com/fsa-drive/admin-service/internal/repositories"
	"github.com/fsa-drive/admin-service/internal/services"
	"github.com/fsa-drive/admin-service/internal/utils"
)

type HandlerManager struct {
	userHandler    *UserHandler
	importHandler  *ImportHandler
	catalogHandler *CatalogHandler
	driveHandler   *DriveHandler
	sessionHandler *SessionHandler
	authMiddleware *CasdoorAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	index *directory.Index,
	driveLinks map[string]string,
	logger utils.Logger,
	casdoorConfig config.CasdoorConfig,
	store repositories.UserStore,
) *HandlerManager {
	return &HandlerManager{
		userHandler:    NewUserHandler(serviceManager.Users(), index, logger),
		importHandler:  NewImportHandler(serviceManager.Import(), logger),
		catalogHandler: NewCatalogHandler(logger),
		driveHandler:   NewDriveHandler(driveLinks, logger),
		sessionHandler: NewSessionHandler(serviceManager.Session(), logger),
		authMiddleware: NewCasdoorAuthMiddleware(casdoorConfig, store),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware())
	{
		// User management - Admins only
		users := v1.Group("/users")
		users.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			users.GET("", hm.userHandler.ListUsers)
			users.GET("/search", hm.userHandler.SearchUsers)
			users.GET("/:id", hm.userHandler.GetUser)
			users.POST("", hm.userHandler.CreateUser)
			users.PUT("/:id", hm.userHandler.UpdateUser)
			users.DELETE("/:id", hm.userHandler.DeleteUser)
			users.POST("/:id/reset-password", hm.userHandler.ResetPassword)

			users.POST("/import", hm.importHandler.ImportUsers)
		}

		// Catalog and selection - all authenticated users
		cat := v1.Group("/catalog")
		{
			cat.GET("/grade-levels", hm.catalogHandler.GetGradeLevels)
			cat.GET("/categories", hm.catalogHandler.GetCategories)
			cat.GET("/subjects", hm.catalogHandler.GetSubjects)
			cat.POST("/selection", hm.catalogHandler.TransitionSelection)
		}

		// Drive launcher
		v1.GET("/drive/link", hm.driveHandler.GetDriveLink)

		// Saved subject session
		v1.POST("/session", hm.sessionHandler.SaveSession)
		v1.GET("/session", hm.sessionHandler.GetSession)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "drive-admin-service",
		})
	})
}
