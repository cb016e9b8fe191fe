package service

import (
	"context"
	"time"

	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/constants"
	"github.com/eneso-link/internal/geoip"
	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/models"
	"github.com/eneso-link/internal/queue"
	"github.com/eneso-link/internal/repository"
)

const defaultTrackingTimeout = 5 * time.Second

// LinkClickEvent 短链点击事件
type LinkClickEvent struct {
	LinkID    uint
	IPAddress string
	UserAgent string
	Referrer  *string
}

// ListClickEvent 清单点击事件
type ListClickEvent struct {
	ListID    uint
	ListURLID *string
	IPAddress string
	UserAgent string
	Referrer  *string
}

// ClickTracker 点击记录服务。
// 负责事件落库与计数累加；async 模式下点击在响应后处理
// （队列可用走队列，否则进程内异步），sync 模式在响应前完成。
// 记录失败只打日志，永远不影响跳转和统计接口的响应。
type ClickTracker struct {
	clickRepo repository.ClickRepository
	linkRepo  repository.LinkRepository
	listRepo  repository.ListRepository
	geo       geoip.Resolver
	queue     *queue.Client
	syncMode  bool
	timeout   time.Duration
}

// NewClickTracker 创建点击记录服务
func NewClickTracker(
	clickRepo repository.ClickRepository,
	linkRepo repository.LinkRepository,
	listRepo repository.ListRepository,
	geo geoip.Resolver,
	queueClient *queue.Client,
	cfg *config.TrackingConfig,
) *ClickTracker {
	timeout := defaultTrackingTimeout
	syncMode := false
	if cfg != nil {
		syncMode = cfg.IsSync()
		if cfg.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
	}
	return &ClickTracker{
		clickRepo: clickRepo,
		linkRepo:  linkRepo,
		listRepo:  listRepo,
		geo:       geo,
		queue:     queueClient,
		syncMode:  syncMode,
		timeout:   timeout,
	}
}

// TrackLinkClick 记录短链点击
func (t *ClickTracker) TrackLinkClick(event LinkClickEvent) {
	if t.syncMode {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.ProcessLinkClick(ctx, event)
		return
	}
	if t.queue.Enabled() {
		err := t.queue.EnqueueLinkClick(queue.LinkClickPayload{
			LinkID:    event.LinkID,
			IPAddress: event.IPAddress,
			UserAgent: event.UserAgent,
			Referrer:  event.Referrer,
		})
		if err == nil {
			return
		}
		// 队列不可用时退回进程内异步，事件不丢
		logger.Warnw("link_click_enqueue_failed", "link_id", event.LinkID, "error", err)
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.ProcessLinkClick(ctx, event)
	}()
}

// TrackListClick 记录清单点击
func (t *ClickTracker) TrackListClick(event ListClickEvent) {
	if t.syncMode {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.ProcessListClick(ctx, event)
		return
	}
	if t.queue.Enabled() {
		err := t.queue.EnqueueListClick(queue.ListClickPayload{
			ListID:    event.ListID,
			ListURLID: event.ListURLID,
			IPAddress: event.IPAddress,
			UserAgent: event.UserAgent,
			Referrer:  event.Referrer,
		})
		if err == nil {
			return
		}
		logger.Warnw("list_click_enqueue_failed", "list_id", event.ListID, "error", err)
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		t.ProcessListClick(ctx, event)
	}()
}

// ProcessLinkClick 完成短链点击的归属地解析、落库与计数。
// 落库失败不阻止计数累加，两步各自失败只打日志。
func (t *ClickTracker) ProcessLinkClick(ctx context.Context, event LinkClickEvent) {
	location := t.resolveLocation(ctx, event.IPAddress)
	click := &models.Click{
		LinkID:    event.LinkID,
		IPAddress: event.IPAddress,
		UserAgent: event.UserAgent,
		Referrer:  event.Referrer,
		Country:   location.Country,
		City:      location.City,
		Device:    optional(DetectDevice(event.UserAgent)),
		Browser:   optional(DetectBrowser(event.UserAgent, constants.BrowserUnknown)),
	}
	if err := t.clickRepo.CreateClick(click); err != nil {
		logger.Errorw("link_click_insert_failed", "link_id", event.LinkID, "error", err)
	}
	if err := t.linkRepo.IncrementClickCount(event.LinkID); err != nil {
		logger.Errorw("link_click_count_failed", "link_id", event.LinkID, "error", err)
	}
}

// ProcessListClick 完成清单点击的归属地解析、落库与计数
func (t *ClickTracker) ProcessListClick(ctx context.Context, event ListClickEvent) {
	location := t.resolveLocation(ctx, event.IPAddress)
	click := &models.ListClick{
		ListID:    event.ListID,
		ListURLID: event.ListURLID,
		IPAddress: event.IPAddress,
		UserAgent: event.UserAgent,
		Referrer:  event.Referrer,
		Country:   location.Country,
		City:      location.City,
		Device:    optional(DetectDevice(event.UserAgent)),
		Browser:   optional(DetectBrowser(event.UserAgent, constants.BrowserOther)),
		Converted: false,
	}
	if err := t.clickRepo.CreateListClick(click); err != nil {
		logger.Errorw("list_click_insert_failed", "list_id", event.ListID, "error", err)
	}
	if err := t.listRepo.IncrementClickCount(event.ListID); err != nil {
		logger.Errorw("list_click_count_failed", "list_id", event.ListID, "error", err)
	}
}

func (t *ClickTracker) resolveLocation(ctx context.Context, ip string) geoip.Location {
	if t.geo == nil {
		return geoip.Location{}
	}
	return t.geo.Resolve(ctx, ip)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
