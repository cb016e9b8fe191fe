package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/eneso-link/internal/cache"
	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Fatalf("Failed to connect redis: %v", err)
	}

	db := models.DB
	categoryRepo := repository.NewCategoryRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	listRepo := repository.NewListRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// 添加分类
	categories := []models.Category{
		{Slug: "tecnologia", Name: "Tecnología", SortOrder: 1, IsFeatured: true},
		{Slug: "hogar", Name: "Hogar", SortOrder: 2},
		{Slug: "belleza", Name: "Belleza", SortOrder: 3},
	}
	for i := range categories {
		existing, err := categoryRepo.GetBySlug(categories[i].Slug)
		if err != nil {
			stdLog.Fatalf("Failed to query category %s: %v", categories[i].Slug, err)
		}
		if existing != nil {
			categories[i] = *existing
			continue
		}
		if err := categoryRepo.Create(&categories[i]); err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].Slug, err)
		}
	}

	// 添加电商品牌，品牌无仓库层，直接落库
	brands := []models.EcommerceBrand{
		{Name: "Trendyol", Color: "#F27A1A", SortOrder: 1},
		{Name: "Amazon", Color: "#FF9900", SortOrder: 2},
		{Name: "Hepsiburada", Color: "#FF6000", SortOrder: 3},
	}
	for i := range brands {
		if err := db.Where("name = ?", brands[i].Name).FirstOrCreate(&brands[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed brand %s: %v", brands[i].Name, err)
		}
	}

	// 添加推广链接及候选地址，重复执行时刷新文案字段
	originalURL := "https://example.com/products/auriculares"
	link := &models.AffiliateLink{
		ShortURL:    "demo1",
		Title:       "Auriculares inalámbricos",
		Description: "Mis auriculares favoritos para el día a día",
		OriginalURL: &originalURL,
		IsActive:    true,
		IsFeatured:  true,
		CategoryID:  &categories[0].ID,
		BrandID:     &brands[0].ID,
	}
	existingLink, err := linkRepo.GetByShortCode(link.ShortURL)
	if err != nil {
		stdLog.Fatalf("Failed to query link: %v", err)
	}
	if existingLink != nil {
		existingLink.Title = link.Title
		existingLink.Description = link.Description
		existingLink.OriginalURL = link.OriginalURL
		if err := linkRepo.Update(existingLink); err != nil {
			stdLog.Fatalf("Failed to update link: %v", err)
		}
		// 文案刷新后清掉旧的跳转缓存
		if err := cache.Delete(context.Background(), "redirect:"+existingLink.ShortURL); err != nil {
			stdLog.Printf("Failed to invalidate redirect cache: %v", err)
		}
		link = existingLink
	} else if err := linkRepo.Create(link); err != nil {
		stdLog.Fatalf("Failed to seed link: %v", err)
	}

	productURLs := []models.ProductURL{
		{LinkID: link.ID, BrandID: &brands[0].ID, URL: "https://www.trendyol.com/p/demo1", IsPrimary: true, SortOrder: 1},
		{LinkID: link.ID, BrandID: &brands[1].ID, URL: "https://www.amazon.com/dp/demo1", SortOrder: 2},
	}
	for i := range productURLs {
		err := db.Where("link_id = ? AND url = ?", productURLs[i].LinkID, productURLs[i].URL).
			FirstOrCreate(&productURLs[i]).Error
		if err != nil {
			stdLog.Fatalf("Failed to seed product url: %v", err)
		}
	}

	// 添加精选清单
	listShort := "setup"
	list := &models.CuratedList{
		Slug:        "mi-setup",
		ShortURL:    &listShort,
		Title:       "Mi setup completo",
		Description: "Todo lo que uso en mi escritorio",
		IsFeatured:  true,
		CategoryID:  &categories[0].ID,
	}
	existingList, err := listRepo.Resolve(list.Slug)
	if err != nil {
		stdLog.Fatalf("Failed to query list: %v", err)
	}
	if existingList != nil {
		list = existingList
	} else if err := listRepo.Create(list); err != nil {
		stdLog.Fatalf("Failed to seed list: %v", err)
	}

	listLink := models.ListLink{ListID: list.ID, LinkID: link.ID, SortOrder: 1}
	err = db.Where("list_id = ? AND link_id = ?", list.ID, link.ID).
		FirstOrCreate(&listLink).Error
	if err != nil {
		stdLog.Fatalf("Failed to seed list link: %v", err)
	}

	// 添加主理人资料
	existingProfile, err := profileRepo.GetFirst()
	if err != nil {
		stdLog.Fatalf("Failed to query profile: %v", err)
	}
	if existingProfile == nil {
		profile := &models.Profile{
			ID:   1,
			Name: "Eneso",
			Bio:  "Descubre mis productos favoritos",
		}
		if err := profileRepo.Save(profile); err != nil {
			stdLog.Fatalf("Failed to seed profile: %v", err)
		}
	}

	fmt.Println("Seed completed")
	if base := strings.TrimRight(cfg.Site.BaseURL, "/"); base != "" {
		fmt.Printf("Demo link: %s/l/%s\n", base, link.ShortURL)
	}
}
