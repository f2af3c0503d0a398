package handler

import (
	"errors"
	"net/http"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/middleware"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
)

type CashBoxHandler struct{ svc service.CashBoxService }

func NewCashBoxHandler(svc service.CashBoxService) *CashBoxHandler {
	return &CashBoxHandler{svc: svc}
}

// Open godoc
// @Summary      Abrir caja
// @Description  Abre una sesión de caja para el vendedor autenticado. Falla si ya tiene una abierta.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} dto.CashBoxResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/cashbox/open [post]
func (h *CashBoxHandler) Open(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Open(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCashBoxAlreadyOpen) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Close godoc
// @Summary      Cerrar caja
// @Description  Cierra la sesión de caja. Cerrar una caja ya cerrada no tiene efecto.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la sesión"
// @Success      200 {object} dto.CashBoxResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cashbox/{id}/close [post]
func (h *CashBoxHandler) Close(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Close(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCashBoxNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Active godoc
// @Summary      Caja activa del vendedor
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CashBoxResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cashbox/active [get]
func (h *CashBoxHandler) Active(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Active(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Sin caja abierta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary      Historial de cajas cerradas
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Página (default 1)"
// @Param        limit query int false "Registros por página (default 50)"
// @Success      200   {object} dto.CashBoxHistoryResponse
// @Router       /v1/cashbox/history [get]
func (h *CashBoxHandler) History(c *gin.Context) {
	page, limit := pagination(c)
	resp, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
