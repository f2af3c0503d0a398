package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/middleware"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	svc         service.SaleService
	storagePath string
}

func NewSalesHandler(svc service.SaleService, storagePath string) *SalesHandler {
	return &SalesHandler{svc: svc, storagePath: storagePath}
}

// Checkout godoc
// @Summary      Confirmar venta
// @Description  Registra la venta con los productos del carrito a precios vigentes, vacía el carrito y encola la impresión de tickets. Requiere una caja abierta.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CheckoutRequest true "Método de pago"
// @Success      201  {object} dto.SaleResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/sales/checkout [post]
func (h *SalesHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Checkout(c.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) || errors.Is(err, service.ErrNoOpenCashBox) || errors.Is(err, service.ErrProductInactive) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Página (default 1)"
// @Param        limit query int false "Registros por página (default 50)"
// @Success      200   {object} dto.SaleListResponse
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	resp, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200 {object} dto.SaleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Venta no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadReceipt godoc
// @Summary      Descargar tickets en PDF
// @Description  Sirve el PDF de tickets generado por el worker de impresión. 404 si aún no fue generado.
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path int true "ID de la venta"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id}/receipt [get]
func (h *SalesHandler) DownloadReceipt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	path := filepath.Join(h.storagePath, fmt.Sprintf("venta_%d.pdf", id))
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Ticket aún no generado"))
		return
	}
	c.FileAttachment(path, fmt.Sprintf("venta_%d.pdf", id))
}
