package product

import (
	"net/http"

	"github.com/AminElhag/Elixir/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// ListProducts godoc
// @Summary      List packages
// @Description  Returns all purchasable packages, optionally filtered by category.
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   Product
// @Failure      400       {object}  api.ErrorResponse
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		category, err := ParseCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown category"})
			return
		}
		c.JSON(http.StatusOK, h.provider.ListByCategory(category))
		return
	}

	c.JSON(http.StatusOK, h.provider.ListProducts())
}

// GetProduct godoc
// @Summary      Get package
// @Tags         products
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  Product
// @Failure      404        {object}  api.ErrorResponse
// @Router       /products/{productID} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	p, ok := h.provider.GetProduct(c.Param("productID"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
