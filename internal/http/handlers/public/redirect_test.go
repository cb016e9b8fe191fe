package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/repository"
	"github.com/eneso-link/internal/service"
)

func TestRedirectFollowsPrimaryURLAndRecordsClick(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	link := &models.AffiliateLink{
		ShortURL: "abc",
		Title:    "Teclado",
		IsActive: true,
		ProductURLs: []models.ProductURL{
			{URL: "https://shop-a.example/p/1", SortOrder: 1},
			{URL: "https://shop-b.example/p/1", IsPrimary: true, SortOrder: 5},
		},
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/l/abc", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) AppleWebKit/605.1.15 Version/17.0 Mobile Safari/605.1.15")
	req.Header.Set("Referer", "https://instagram.com/")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (%s)", w.Code, w.Body.String())
	}
	if location := w.Header().Get("Location"); location != "https://shop-b.example/p/1" {
		t.Fatalf("unexpected location: %s", location)
	}

	var click models.Click
	if err := db.Where("link_id = ?", link.ID).First(&click).Error; err != nil {
		t.Fatalf("expected click row: %v", err)
	}
	if click.IPAddress != "203.0.113.7" {
		t.Fatalf("unexpected ip: %s", click.IPAddress)
	}
	if click.Referrer == nil || *click.Referrer != "https://instagram.com/" {
		t.Fatalf("unexpected referrer: %v", click.Referrer)
	}
	if click.Device == nil || *click.Device != "mobile" {
		t.Fatalf("unexpected device: %v", click.Device)
	}
	if click.Browser == nil || *click.Browser != "Safari" {
		t.Fatalf("unexpected browser: %v", click.Browser)
	}

	var reloaded models.AffiliateLink
	if err := db.First(&reloaded, link.ID).Error; err != nil {
		t.Fatalf("reload link failed: %v", err)
	}
	if reloaded.ClickCount != 1 {
		t.Fatalf("expected click_count=1, got %d", reloaded.ClickCount)
	}
}

func TestRedirectUnknownCode(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	req := httptest.NewRequest(http.MethodGet, "/l/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["error"] != "Link not found or inactive" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	var count int64
	if err := db.Model(&models.Click{}).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no click rows, got %d", count)
	}
}

func TestRedirectNoDestination(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	link := &models.AffiliateLink{ShortURL: "abc", Title: "Teclado", IsActive: true}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/l/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["error"] != "No redirect URL found for this link" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	var count int64
	if err := db.Model(&models.Click{}).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no click rows, got %d", count)
	}
}

func TestRedirectMissingMetadataUsesPlaceholders(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	originalURL := "https://origin.example/p/1"
	link := &models.AffiliateLink{
		ShortURL:    "abc",
		Title:       "Teclado",
		IsActive:    true,
		OriginalURL: &originalURL,
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/l/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}

	var click models.Click
	if err := db.Where("link_id = ?", link.ID).First(&click).Error; err != nil {
		t.Fatalf("expected click row: %v", err)
	}
	if click.IPAddress != "unknown" {
		t.Fatalf("expected placeholder ip, got %s", click.IPAddress)
	}
	if click.UserAgent != "unknown" {
		t.Fatalf("expected placeholder user agent, got %s", click.UserAgent)
	}
	if click.Referrer != nil {
		t.Fatalf("expected nil referrer, got %v", *click.Referrer)
	}
	if click.Device != nil || click.Browser != nil {
		t.Fatalf("expected unset device/browser, got %v %v", click.Device, click.Browser)
	}
}

// blockingClickRepo 在放行前挂起点击落库，用于验证响应不等待分析写入
type blockingClickRepo struct {
	repository.ClickRepository
	release chan struct{}
	done    chan struct{}
}

func (b *blockingClickRepo) CreateClick(click *models.Click) error {
	<-b.release
	err := b.ClickRepository.CreateClick(click)
	close(b.done)
	return err
}

func TestRedirectAsyncDoesNotWaitForAnalyticsWrite(t *testing.T) {
	r, db, c := newTestEnv(t, "async")

	link := &models.AffiliateLink{
		ShortURL: "abc",
		Title:    "Teclado",
		IsActive: true,
		ProductURLs: []models.ProductURL{
			{URL: "https://shop-a.example/p/1", IsPrimary: true},
		},
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	blocking := &blockingClickRepo{
		ClickRepository: c.ClickRepo,
		release:         make(chan struct{}),
		done:            make(chan struct{}),
	}
	c.ClickTracker = service.NewClickTracker(
		blocking, c.LinkRepo, c.ListRepo, c.GeoResolver, nil, &c.Config.Tracking,
	)

	req := httptest.NewRequest(http.MethodGet, "/l/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 落库仍被挂起，响应必须已经完成
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 while analytics write pending, got %d", w.Code)
	}
	var count int64
	if err := db.Model(&models.Click{}).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no click rows before release, got %d", count)
	}

	close(blocking.release)
	select {
	case <-blocking.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("analytics write never completed")
	}

	if err := db.Model(&models.Click{}).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected click row after release, got %d", count)
	}
}

func TestRedirectAsyncModeStillRedirects(t *testing.T) {
	r, db := newTestRouter(t, "async")

	link := &models.AffiliateLink{
		ShortURL: "abc",
		Title:    "Teclado",
		IsActive: true,
		ProductURLs: []models.ProductURL{
			{URL: "https://shop-a.example/p/1", IsPrimary: true},
		},
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/l/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "https://shop-a.example/p/1" {
		t.Fatalf("unexpected location: %s", location)
	}
}
