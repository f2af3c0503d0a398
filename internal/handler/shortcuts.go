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

// ShortcutsHandler manages the authenticated seller's keyboard shortcuts.
type ShortcutsHandler struct{ svc service.ShortcutService }

func NewShortcutsHandler(svc service.ShortcutService) *ShortcutsHandler {
	return &ShortcutsHandler{svc: svc}
}

// List godoc
// @Summary      Listar atajos de teclado
// @Tags         atajos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ShortcutResponse
// @Router       /v1/users/me/shortcuts [get]
func (h *ShortcutsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar atajos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Replace godoc
// @Summary      Reemplazar atajos de teclado
// @Description  Reemplaza el mapa completo de atajos del vendedor. Cada tecla mapea a un producto activo.
// @Tags         atajos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ReplaceShortcutsRequest true "Atajos"
// @Success      200  {array}  dto.ShortcutResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/users/me/shortcuts [put]
func (h *ShortcutsHandler) Replace(c *gin.Context) {
	var req dto.ReplaceShortcutsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Replace(c.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateShortcutKey) || errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Eliminar un atajo
// @Tags         atajos
// @Security     BearerAuth
// @Param        key path string true "Tecla"
// @Success      204
// @Router       /v1/users/me/shortcuts/{key} [delete]
func (h *ShortcutsHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.UserID, c.Param("key")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
