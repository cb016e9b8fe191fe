package queue

import (
	"encoding/json"

	"github.com/eneso-link/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskLinkClick 短链点击记录任务
	TaskLinkClick = constants.TaskLinkClick
	// TaskListClick 清单点击记录任务
	TaskListClick = constants.TaskListClick
)

// LinkClickPayload 短链点击任务载荷
type LinkClickPayload struct {
	LinkID    uint    `json:"link_id"`
	IPAddress string  `json:"ip_address"`
	UserAgent string  `json:"user_agent"`
	Referrer  *string `json:"referrer,omitempty"`
}

// ListClickPayload 清单点击任务载荷
type ListClickPayload struct {
	ListID    uint    `json:"list_id"`
	ListURLID *string `json:"list_url_id,omitempty"`
	IPAddress string  `json:"ip_address"`
	UserAgent string  `json:"user_agent"`
	Referrer  *string `json:"referrer,omitempty"`
}

// NewLinkClickTask 创建短链点击任务
func NewLinkClickTask(payload LinkClickPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLinkClick, body), nil
}

// NewListClickTask 创建清单点击任务
func NewListClickTask(payload ListClickPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskListClick, body), nil
}
