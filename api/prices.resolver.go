package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPrices(c *gin.Context) {
	symbols := []string{}
	for _, s := range strings.Split(c.Query("symbols"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("symbols query parameter is required"), c, 400)
		return
	}

	prices := m.PriceService.GetPrices(c.Request.Context(), symbols)

	c.JSON(200, gin.H{
		"prices":      prices,
		"unavailable": prices.Unavailable(),
	})
}
