package httpserver

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(cents int64) string {
			return fmt.Sprintf("$%.2f", float64(cents)/100)
		},
	}
}

// render merges page data with the notices and the pixel/currency context every
// template receives.
func (h *storefrontHandlers) render(c *gin.Context, status int, name string, data gin.H) {
	successes, errs := consumeFlashes(c)
	merged := gin.H{
		"Currency":           h.cfg.Currency,
		"MetaPixelID":        h.cfg.Pixels.MetaPixelID,
		"TikTokPixelID":      h.cfg.Pixels.TikTokPixelID,
		"SnapPixelID":        h.cfg.Pixels.SnapPixelID,
		"SkipCheckoutPixels": h.cfg.Scenarios.SkipCheckoutPixels,
		"DeferPixelLoad":     h.cfg.Scenarios.DeferFirstLoadToConsent,
		"NoSnapPII":          h.cfg.Scenarios.NoSnapPII,
		"NoSnapValues":       h.cfg.Scenarios.NoSnapValues,
		"Successes":          successes,
		"Errors":             errs,
	}
	for k, v := range data {
		merged[k] = v
	}
	c.HTML(status, name, merged)
}
