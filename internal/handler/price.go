package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/asa131211/sanchez-park/internal/apierror"
	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/repository"
	"github.com/asa131211/sanchez-park/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceHandler serves the public price check endpoint.
// No authentication required and no side effects beyond cache population.
type PriceHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceHandler {
	return &PriceHandler{repo: repo, rdb: rdb}
}

// GetPrice godoc
// @Summary      Consulta de precio (sin autenticación)
// @Tags         precio
// @Produce      json
// @Param        id path int true "ID del producto"
// @Success      200 {object} dto.PriceCheckResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/price/{id} [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := service.PriceCacheKey(id)

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss, query DB
	product, err := h.repo.FindByID(ctx, id)
	if err != nil || !product.Active {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := dto.PriceCheckResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}

	// 3. Populate cache, best effort
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
