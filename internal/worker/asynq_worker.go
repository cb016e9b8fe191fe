package worker

import (
	"context"
	"encoding/json"

	"github.com/eneso-link/internal/logger"
	"github.com/eneso-link/internal/provider"
	"github.com/eneso-link/internal/queue"
	"github.com/eneso-link/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskLinkClick, c.handleLinkClick)
	mux.HandleFunc(queue.TaskListClick, c.handleListClick)
}

// 点击记录是尽力而为的：载荷损坏或处理失败只打日志，不触发任务重试
func (c *Consumer) handleLinkClick(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_link_click_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LinkClickPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_link_click_unmarshal_failed", "error", err)
		return nil
	}
	if payload.LinkID == 0 {
		logger.Debugw("worker_link_click_skip_invalid_payload", "link_id", payload.LinkID)
		return nil
	}
	if c.ClickTracker == nil {
		logger.Warnw("worker_link_click_skip_tracker_nil", "link_id", payload.LinkID)
		return nil
	}
	c.ClickTracker.ProcessLinkClick(ctx, payloadToLinkEvent(payload))
	return nil
}

func (c *Consumer) handleListClick(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_list_click_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ListClickPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_list_click_unmarshal_failed", "error", err)
		return nil
	}
	if payload.ListID == 0 {
		logger.Debugw("worker_list_click_skip_invalid_payload", "list_id", payload.ListID)
		return nil
	}
	if c.ClickTracker == nil {
		logger.Warnw("worker_list_click_skip_tracker_nil", "list_id", payload.ListID)
		return nil
	}
	c.ClickTracker.ProcessListClick(ctx, payloadToListEvent(payload))
	return nil
}

func payloadToLinkEvent(payload queue.LinkClickPayload) service.LinkClickEvent {
	return service.LinkClickEvent{
		LinkID:    payload.LinkID,
		IPAddress: payload.IPAddress,
		UserAgent: payload.UserAgent,
		Referrer:  payload.Referrer,
	}
}

func payloadToListEvent(payload queue.ListClickPayload) service.ListClickEvent {
	return service.ListClickEvent{
		ListID:    payload.ListID,
		ListURLID: payload.ListURLID,
		IPAddress: payload.IPAddress,
		UserAgent: payload.UserAgent,
		Referrer:  payload.Referrer,
	}
}
