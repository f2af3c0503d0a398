package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) bindFilter(c *gin.Context) (dto.ReportFilter, bool) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return filter, false
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Rango de fechas inválido (formato YYYY-MM-DD)"))
		return filter, false
	}
	return filter, true
}

// Summary godoc
// @Summary      Reporte de ventas
// @Description  Totales, desglose por método de pago y unidades por producto en el rango dado. Sin filtro, reporta el día de hoy.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        from    query string false "Desde (YYYY-MM-DD)"
// @Param        to      query string false "Hasta (YYYY-MM-DD)"
// @Param        user_id query int    false "Filtrar por vendedor"
// @Success      200     {object} dto.SalesReportResponse
// @Failure      400     {object} apierror.APIError
// @Router       /v1/reports/sales [get]
func (h *ReportsHandler) Summary(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCSV godoc
// @Summary      Exportar ventas a CSV
// @Tags         reportes
// @Produce      text/csv
// @Security     BearerAuth
// @Param        from    query string false "Desde (YYYY-MM-DD)"
// @Param        to      query string false "Hasta (YYYY-MM-DD)"
// @Param        user_id query int    false "Filtrar por vendedor"
// @Success      200     {file} file
// @Failure      400     {object} apierror.APIError
// @Router       /v1/reports/sales/export [get]
func (h *ReportsHandler) ExportCSV(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf("ventas_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := h.svc.ExportCSV(c.Request.Context(), filter, c.Writer); err != nil {
		// Headers are already out; log through the error middleware.
		_ = c.Error(err)
	}
}
