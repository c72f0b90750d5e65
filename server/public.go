package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.deps.Products.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.deps.Products.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to get product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type brandSummary struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

func (s *Server) listBrands(c *gin.Context) {
	products, err := s.deps.Products.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load brands"})
		return
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range products {
		if _, seen := counts[products[i].Brand]; !seen {
			order = append(order, products[i].Brand)
		}
		counts[products[i].Brand]++
	}
	brands := make([]brandSummary, 0, len(order))
	for _, name := range order {
		brands = append(brands, brandSummary{Name: name, ProductCount: counts[name]})
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (s *Server) getBrand(c *gin.Context) {
	brand := c.Param("brand")
	products, err := s.deps.Products.ListByBrand(c.Request.Context(), brand)
	if err != nil {
		s.logger.Error("failed to list brand products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand": brand, "products": products})
}

func (s *Server) listTestimonials(c *gin.Context) {
	limit := int64(4)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	testimonials, err := s.deps.Testimonials.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.deps.Settings.Get(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) search(c *gin.Context) {
	query := c.Query("q")
	results, err := s.deps.Search.Search(c.Request.Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "products": results, "total": len(results)})
}

func (s *Server) submitReview(c *gin.Context) {
	var req service.ReviewRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	testimonial, err := s.deps.Reviews.Submit(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, testimonial)
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOrderNotDelivered), errors.Is(err, service.ErrNameMismatch), errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "missing": verr.Missing})
			return
		}
		s.logger.Error("review submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit review"})
	}
}

type inquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (s *Server) submitInquiry(c *gin.Context) {
	var req inquiryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name}, {"phone", req.Phone}, {"message", req.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "missing": missing})
		return
	}
	inquiry := &models.Inquiry{
		Name:      req.Name,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.deps.Inquiries.Insert(c.Request.Context(), inquiry); err != nil {
		s.logger.Error("failed to save inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit inquiry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "inquiry submitted"})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Server) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if err := s.deps.Subscribers.Add(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		s.logger.Error("failed to add subscriber", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}
