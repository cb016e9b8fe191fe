package public

import (
	"fmt"
	"testing"

	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/geoip"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/provider"
	"github.com/eneso-link/internal/repository"
	"github.com/eneso-link/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, trackingMode string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	r, db, _ := newTestEnv(t, trackingMode)
	return r, db
}

func newTestEnv(t *testing.T, trackingMode string) (*gin.Engine, *gorm.DB, *provider.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.EcommerceBrand{},
		&models.AffiliateLink{},
		&models.ProductURL{},
		&models.CuratedList{},
		&models.ListURL{},
		&models.ListLink{},
		&models.Click{},
		&models.ListClick{},
		&models.Profile{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		Tracking: config.TrackingConfig{Mode: trackingMode, TimeoutSeconds: 2},
		GeoIP:    config.GeoIPConfig{Enabled: false},
	}

	c := &provider.Container{Config: cfg}
	c.LinkRepo = repository.NewLinkRepository(db)
	c.ListRepo = repository.NewListRepository(db)
	c.ClickRepo = repository.NewClickRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
	c.GeoResolver = geoip.NewClient(&cfg.GeoIP)
	c.LinkService = service.NewLinkService(c.LinkRepo)
	c.ListService = service.NewListService(c.ListRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProfileService = service.NewProfileService(c.ProfileRepo)
	c.ClickTracker = service.NewClickTracker(c.ClickRepo, c.LinkRepo, c.ListRepo, c.GeoResolver, nil, &cfg.Tracking)

	h := New(c)
	r := gin.New()
	r.GET("/l/:code", h.Redirect)
	api := r.Group("/api")
	api.GET("/categories", h.ListCategories)
	api.GET("/links/:id", h.GetLink)
	api.GET("/lists", h.ListLists)
	api.GET("/lists/:slug", h.GetList)
	api.POST("/lists/:slug/click", h.TrackListClick)
	api.GET("/profile", h.GetProfile)
	return r, db, c
}
