package server

import (
	"errors"
	"net/http"

	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.deps.Cart.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		s.logger.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.BindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}
	cart, err := s.deps.Cart.AddItem(c.Request.Context(), sessionID(c), req.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to add cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) setCartQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cart, err := s.deps.Cart.SetQuantity(c.Request.Context(), sessionID(c), c.Param("productId"), req.Quantity)
	if errors.Is(err, service.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("failed to set cart quantity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

func (s *Server) removeCartItem(c *gin.Context) {
	cart, err := s.deps.Cart.RemoveItem(c.Request.Context(), sessionID(c), c.Param("productId"))
	if errors.Is(err, service.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.deps.Cart.Clear(c.Request.Context(), sessionID(c)); err != nil {
		s.logger.Error("failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (s *Server) checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	result, err := s.deps.Checkout.Checkout(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "missing": verr.Missing})
		case errors.Is(err, service.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			s.logger.Error("checkout failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order failed, try again"})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}
