package handler

import (
	"errors"
	"net/http"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/middleware"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct{ svc service.CartService }

func NewCartHandler(svc service.CartService) *CartHandler { return &CartHandler{svc: svc} }

// View godoc
// @Summary      Ver carrito
// @Description  Retorna el carrito del vendedor con precios vigentes del catálogo.
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.View(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito, incrementa su cantidad en 1.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AddCartItemRequest true "Producto"
// @Success      200  {object} dto.CartResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Add(c.Request.Context(), claims.UserID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Description  Fija la cantidad exacta. Cantidad cero o negativa elimina la línea.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateCartItemRequest true "Línea y cantidad"
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart/items [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateQuantity(c.Request.Context(), claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary      Quitar producto del carrito
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del producto"
// @Success      200 {object} dto.CartResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Remove(c.Request.Context(), claims.UserID, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Security     BearerAuth
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.svc.Clear(c.Request.Context(), claims.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
