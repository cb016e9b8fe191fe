package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eneso-link/internal/config"
	"github.com/eneso-link/internal/constants"
	"github.com/eneso-link/internal/logger"
)

const (
	defaultBaseURL = "http://ip-api.com"
	defaultTimeout = 2 * time.Second
)

// Location IP 归属地解析结果，缺失字段为 nil
type Location struct {
	Country *string `json:"country"`
	City    *string `json:"city"`
}

// Resolver IP 归属地解析接口
type Resolver interface {
	Resolve(ctx context.Context, ip string) Location
}

// Client 基于 ip-api.com 免费接口的解析实现。
// 免费档有频率限制，任何失败都降级为空结果，单次请求不重试。
type Client struct {
	baseURL    string
	httpClient *http.Client
	enabled    bool
}

// NewClient 创建解析客户端
func NewClient(cfg *config.GeoIPConfig) *Client {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	enabled := true
	if cfg != nil {
		enabled = cfg.Enabled
		if trimmed := strings.TrimSpace(cfg.BaseURL); trimmed != "" {
			baseURL = strings.TrimRight(trimmed, "/")
		}
		if cfg.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		enabled:    enabled,
	}
}

// 响应体只取需要的三个字段
type lookupResponse struct {
	Status  string `json:"status"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Resolve 解析客户端 IP 的归属国家与城市。
// 本机/内网地址直接跳过，不发起网络请求；失败一律返回空结果。
func (c *Client) Resolve(ctx context.Context, ip string) Location {
	if c == nil || !c.enabled {
		return Location{}
	}
	if SkipLookup(ip) {
		return Location{}
	}

	url := fmt.Sprintf("%s/json/%s?fields=status,country,city", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Debugw("geoip_build_request_failed", "ip", ip, "error", err)
		return Location{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debugw("geoip_lookup_failed", "ip", ip, "error", err)
		return Location{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debugw("geoip_lookup_non_ok", "ip", ip, "status", resp.StatusCode)
		return Location{}
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Debugw("geoip_decode_failed", "ip", ip, "error", err)
		return Location{}
	}
	if body.Status != "success" {
		return Location{}
	}

	var location Location
	if body.Country != "" {
		location.Country = &body.Country
	}
	if body.City != "" {
		location.City = &body.City
	}
	return location
}

// SkipLookup 判断是否跳过归属地查询（占位值、环回地址、内网地址）
func SkipLookup(ip string) bool {
	if ip == "" || ip == constants.MetadataUnknown {
		return true
	}
	return strings.HasPrefix(ip, "127.") ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "10.")
}
