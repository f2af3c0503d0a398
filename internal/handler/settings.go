package handler

import (
	"net/http"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Obtener configuración
// @Tags         configuracion
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SettingsResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Actualizar configuración
// @Tags         configuracion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateSettingsRequest true "Configuración"
// @Success      200  {object} dto.SettingsResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TouchSync godoc
// @Summary      Registrar sincronización
// @Description  El frontend la invoca al recuperar conectividad; actualiza la marca de última sincronización.
// @Tags         configuracion
// @Security     BearerAuth
// @Success      204
// @Router       /v1/settings/sync [post]
func (h *SettingsHandler) TouchSync(c *gin.Context) {
	if err := h.svc.TouchSync(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
