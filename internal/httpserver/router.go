package httpserver

import (
	"embed"
	"html/template"
	"log"

	"storefront/internal/config"
	catalogsvc "storefront/internal/service/catalog"
	checkoutsvc "storefront/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Deps are the services the storefront routes are wired against.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CheckoutSvc *checkoutsvc.Service
}

// buildRouter wires middleware and routes for the storefront.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	router.Use(metricsMiddleware())

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{Path: "/", MaxAge: 86400 * 7, HttpOnly: true})
	router.Use(sessions.Sessions("storefront_session", store))

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &storefrontHandlers{
		logger:   logger,
		catalog:  deps.CatalogSvc,
		checkout: deps.CheckoutSvc,
		cfg:      cfg,
	}

	router.GET("/", h.index)
	router.GET("/product/:id", h.productDetail)
	router.GET("/cart", h.viewCart)
	router.POST("/add_to_cart", h.addToCart)
	router.POST("/remove_from_cart/:id", h.removeFromCart)
	router.GET("/checkout", h.checkoutForm)
	router.POST("/checkout", h.checkoutSubmit)
	router.GET("/success/:id", h.orderSuccess)

	return router, nil
}
