package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/provider"
	"github.com/eneso-link/internal/queue"
	"github.com/eneso-link/internal/repository"
	"github.com/eneso-link/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func newTestConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.AffiliateLink{},
		&models.ProductURL{},
		&models.CuratedList{},
		&models.ListURL{},
		&models.ListLink{},
		&models.Click{},
		&models.ListClick{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	clickRepo := repository.NewClickRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	listRepo := repository.NewListRepository(db)
	c := &provider.Container{
		LinkRepo:  linkRepo,
		ListRepo:  listRepo,
		ClickRepo: clickRepo,
		ClickTracker: service.NewClickTracker(
			clickRepo,
			linkRepo,
			listRepo,
			nil,
			nil,
			&config.TrackingConfig{Mode: "sync", TimeoutSeconds: 2},
		),
	}
	return NewConsumer(c), db
}

func TestHandleLinkClickProcessesPayload(t *testing.T) {
	consumer, db := newTestConsumer(t)

	link := &models.AffiliateLink{ShortURL: "abc", Title: "Teclado", IsActive: true}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed link failed: %v", err)
	}

	payload, err := json.Marshal(queue.LinkClickPayload{
		LinkID:    link.ID,
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.4.0",
	})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	task := asynq.NewTask(queue.TaskLinkClick, payload)

	if err := consumer.handleLinkClick(context.Background(), task); err != nil {
		t.Fatalf("handle link click failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Click{}).Where("link_id = ?", link.ID).Count(&count).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 click row, got %d", count)
	}

	var reloaded models.AffiliateLink
	if err := db.First(&reloaded, link.ID).Error; err != nil {
		t.Fatalf("reload link failed: %v", err)
	}
	if reloaded.ClickCount != 1 {
		t.Fatalf("expected click_count=1, got %d", reloaded.ClickCount)
	}
}

func TestHandleListClickProcessesPayload(t *testing.T) {
	consumer, db := newTestConsumer(t)

	list := &models.CuratedList{Slug: "mi-setup", Title: "Mi setup"}
	if err := db.Create(list).Error; err != nil {
		t.Fatalf("seed list failed: %v", err)
	}

	listURLID := "lu1"
	payload, err := json.Marshal(queue.ListClickPayload{
		ListID:    list.ID,
		ListURLID: &listURLID,
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.4.0",
	})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	task := asynq.NewTask(queue.TaskListClick, payload)

	if err := consumer.handleListClick(context.Background(), task); err != nil {
		t.Fatalf("handle list click failed: %v", err)
	}

	var click models.ListClick
	if err := db.Where("list_id = ?", list.ID).First(&click).Error; err != nil {
		t.Fatalf("expected list click row: %v", err)
	}
	if click.ListURLID == nil || *click.ListURLID != listURLID {
		t.Fatalf("unexpected list url id: %v", click.ListURLID)
	}
	if click.Converted {
		t.Fatalf("expected converted=false")
	}
}

func TestHandleLinkClickBadPayloadNotRetried(t *testing.T) {
	consumer, _ := newTestConsumer(t)

	task := asynq.NewTask(queue.TaskLinkClick, []byte("not json"))
	if err := consumer.handleLinkClick(context.Background(), task); err != nil {
		t.Fatalf("expected bad payload to be dropped, got %v", err)
	}

	task = asynq.NewTask(queue.TaskLinkClick, []byte(`{"link_id":0}`))
	if err := consumer.handleLinkClick(context.Background(), task); err != nil {
		t.Fatalf("expected empty payload to be dropped, got %v", err)
	}
}
