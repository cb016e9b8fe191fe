package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eneso-link/internal/models"
)

func TestListCategoriesOrdered(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	categories := []models.Category{
		{Slug: "hogar", Name: "Hogar", SortOrder: 2},
		{Slug: "tecnologia", Name: "Tecnología", SortOrder: 1},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("seed category failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Slug != "tecnologia" {
		t.Fatalf("expected sort order applied, got %s first", got[0].Slug)
	}
}

func TestGetLinkByShortCodeOrID(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	link := &models.AffiliateLink{ShortURL: "abc", Title: "Teclado", IsActive: true}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/links/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 by short code, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/links/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 by id, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/links/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown key, got %d", w.Code)
	}
}

func TestGetLinkNonNumericKeyNotFound(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	link := &models.AffiliateLink{ShortURL: "abc", Title: "Teclado", IsActive: true}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/links/blue-keyboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric miss, got %d (%s)", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["error"] != "Link not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestGetLinkServesInactiveLink(t *testing.T) {
	r, db := newTestRouter(t, "sync")

	link := &models.AffiliateLink{ShortURL: "abc", Title: "Teclado", IsActive: true}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}
	if err := db.Model(link).UpdateColumn("is_active", false).Error; err != nil {
		t.Fatalf("deactivate link failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/links/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 停用只关闭跳转入口，详情仍可访问
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for inactive link detail, got %d", w.Code)
	}
}

func TestGetProfileReturnsDefaultWhenEmpty(t *testing.T) {
	r, _ := newTestRouter(t, "sync")

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var profile models.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if profile.Name == "" {
		t.Fatalf("expected default profile name")
	}
}
