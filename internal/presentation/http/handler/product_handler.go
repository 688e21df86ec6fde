package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/response"
)

// ProductHandler serves the fuel product list for the transaction form
type ProductHandler struct {
	table *pricing.Table
}

// NewProductHandler creates a new product handler
func NewProductHandler(table *pricing.Table) *ProductHandler {
	return &ProductHandler{table: table}
}

type productInfo struct {
	Name      string           `json:"name"`
	UnitPrice int64            `json:"unit_price"`
	Subsidy   *pricing.Subsidy `json:"subsidy,omitempty"`
}

// ListProducts returns all priced products with their subsidy breakdown
func (h *ProductHandler) ListProducts(c *gin.Context) {
	names := h.table.ProductNames()
	products := make([]productInfo, 0, len(names))
	for _, name := range names {
		p := productInfo{Name: name, UnitPrice: h.table.PriceOf(name)}
		if s, ok := h.table.SubsidyOf(name); ok {
			subsidy := s
			p.Subsidy = &subsidy
		}
		products = append(products, p)
	}

	response.OK(c, "Products retrieved successfully", products)
}
