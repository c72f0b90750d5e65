package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/example/storefront/pkg/auth"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/events"
	"github.com/example/storefront/pkg/imagekit"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const sessionHeader = "X-Session-ID"

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Products     *repository.ProductRepository
	Orders       *repository.OrderRepository
	Testimonials *repository.TestimonialRepository
	Inquiries    *repository.InquiryRepository
	Settings     *repository.SettingsRepository
	Subscribers  *repository.SubscriberRepository
	Cart         *service.CartService
	Checkout     *service.CheckoutService
	Reviews      *service.ReviewService
	Search       *service.SearchService
	Admin        *service.AdminService
	Tokens       *auth.Manager
	Uploads      *imagekit.Client
	Publisher    events.Publisher
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	router *gin.Engine
	deps   Deps
}

func New(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
		deps:   deps,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/api/v1")
	{
		// Public catalog
		v1.GET("/products", s.listProducts)
		v1.GET("/products/:id", s.getProduct)
		v1.GET("/brands", s.listBrands)
		v1.GET("/brands/:brand", s.getBrand)
		v1.GET("/testimonials", s.listTestimonials)
		v1.GET("/settings", s.getSettings)
		v1.GET("/search", s.search)

		// Public forms
		v1.POST("/reviews", s.submitReview)
		v1.POST("/inquiries", s.submitInquiry)
		v1.POST("/subscribe", s.subscribe)

		// Session-scoped cart and checkout
		cart := v1.Group("/cart")
		cart.Use(s.sessionMiddleware())
		{
			cart.GET("", s.getCart)
			cart.POST("/items", s.addCartItem)
			cart.PUT("/items/:productId", s.setCartQuantity)
			cart.DELETE("/items/:productId", s.removeCartItem)
			cart.DELETE("", s.clearCart)
		}
		v1.POST("/checkout", s.sessionMiddleware(), s.checkout)

		// Admin back-office
		v1.POST("/admin/login", s.adminLogin)
		admin := v1.Group("/admin")
		admin.Use(s.adminMiddleware())
		{
			admin.GET("/orders", s.adminListOrders)
			admin.GET("/orders/:id", s.adminGetOrder)
			admin.PUT("/orders/:id/status", s.adminUpdateOrderStatus)
			admin.DELETE("/orders/:id", s.adminDeleteOrder)

			admin.POST("/products", s.adminCreateProduct)
			admin.PUT("/products/:id", s.adminUpdateProduct)
			admin.DELETE("/products/:id", s.adminDeleteProduct)

			admin.GET("/testimonials", s.adminListTestimonials)
			admin.DELETE("/testimonials/:id", s.adminDeleteTestimonial)
			admin.GET("/inquiries", s.adminListInquiries)
			admin.DELETE("/inquiries/:id", s.adminDeleteInquiry)

			admin.PUT("/settings", s.adminPutSettings)
			admin.GET("/subscribers", s.adminListSubscribers)
			admin.GET("/upload/auth", s.adminUploadAuth)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("HTTP server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// Handler exposes the router for tests and custom http.Server setups.
func (s *Server) Handler() http.Handler {
	return s.router
}

// sessionMiddleware resolves the browsing session from the X-Session-ID
// header, assigning a fresh one when the client has none yet. The chosen ID
// is echoed back so the client can keep it.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header(sessionHeader, sessionID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// adminMiddleware requires a valid bearer token with the admin role.
func (s *Server) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		claims, err := s.deps.Tokens.Parse(parts[1])
		if err != nil || claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("admin_email", claims.Email)
		c.Next()
	}
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
