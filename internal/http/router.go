// Package http wires the Gin router.
package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/SERMEX0/sermex-backend/internal/config"
	"github.com/SERMEX0/sermex-backend/internal/http/handler"
	"github.com/SERMEX0/sermex-backend/internal/http/middleware"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(
	cfg config.Config,
	authHandler *handler.AuthHandler,
	reviewHandler *handler.ReviewHandler,
	logisticsHandler *handler.LogisticsHandler,
	notifyHandler *handler.NotifyHandler,
	auth *middleware.Auth,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(nil))
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.GET("/", func(c *gin.Context) {
		c.String(nethttp.StatusOK, "Servidor funcionando correctamente")
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/change-password", auth.RequireAuth, authHandler.ChangePassword)

	r.GET("/test-mail", notifyHandler.TestMail)

	api := r.Group("/api")
	{
		api.GET("/test", func(c *gin.Context) {
			c.JSON(nethttp.StatusOK, gin.H{"mensaje": "¡El servidor responde correctamente!"})
		})

		api.GET("/productos/:id", reviewHandler.GetProduct)
		api.GET("/evaluaciones/:producto_id", reviewHandler.ListEvaluations)
		api.POST("/evaluaciones", auth.RequireAuth, reviewHandler.SubmitEvaluation)

		api.GET("/logistica", logisticsHandler.List)
		api.GET("/logistica/:correo", logisticsHandler.ListByCorreo)
		api.PUT("/logistica/actualizar", logisticsHandler.Update)

		api.GET("/vendedores", auth.RequireAuth, notifyHandler.ListVendors)
		api.POST("/enviar-garantia", auth.RequireAuth, notifyHandler.SendWarranty)
		api.POST("/enviar-solicitud", notifyHandler.SendRequest)
		api.POST("/enviar-contacto", notifyHandler.SendContact)
	}

	return r
}
