package server

import (
	"errors"
	"net/http"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	token, err := s.deps.Admin.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) adminListOrders(c *gin.Context) {
	orders, err := s.deps.Orders.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

func (s *Server) adminGetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	order, err := s.deps.Orders.GetByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to get order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	items, err := s.deps.Orders.ListItems(ctx, order.ID)
	if err != nil {
		s.logger.Error("failed to list order items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) adminUpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")
	order, err := s.deps.Orders.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to get order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		return
	}
	if err := s.deps.Orders.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logger.Error("failed to update order status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		return
	}
	if err := s.deps.Publisher.OrderStatusChanged(id, order.Status, req.Status); err != nil {
		s.logger.Warn("failed to publish status event", zap.String("order_id", id), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (s *Server) adminDeleteOrder(c *gin.Context) {
	err := s.deps.Orders.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to delete order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) adminCreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.BindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deps.Products.Create(c.Request.Context(), &product); err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) adminUpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.BindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	product.ID = c.Param("id")
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := s.deps.Products.Update(c.Request.Context(), &product)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to update product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) adminDeleteProduct(c *gin.Context) {
	err := s.deps.Products.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) adminListTestimonials(c *gin.Context) {
	testimonials, err := s.deps.Testimonials.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (s *Server) adminDeleteTestimonial(c *gin.Context) {
	err := s.deps.Testimonials.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to delete testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) adminListInquiries(c *gin.Context) {
	inquiries, err := s.deps.Inquiries.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inquiries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

func (s *Server) adminDeleteInquiry(c *gin.Context) {
	err := s.deps.Inquiries.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to delete inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) adminPutSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.BindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := s.deps.Settings.Put(c.Request.Context(), &settings); err != nil {
		s.logger.Error("failed to save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) adminListSubscribers(c *gin.Context) {
	subscribers, err := s.deps.Subscribers.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list subscribers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscribers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers, "total": len(subscribers)})
}

// adminUploadAuth hands the back-office short-lived signed parameters for a
// direct upload to the image host.
func (s *Server) adminUploadAuth(c *gin.Context) {
	params := s.deps.Uploads.AuthParams()
	c.JSON(http.StatusOK, gin.H{
		"token":     params.Token,
		"expire":    params.Expire,
		"signature": params.Signature,
		"publicKey": s.deps.Uploads.PublicKey(),
	})
}
