package service

import "errors"

// 业务错误，由 handler 映射成对应的 HTTP 状态码
var (
	ErrLinkNotFound  = errors.New("link not found or inactive")
	ErrNoRedirectURL = errors.New("no redirect url found for this link")
	ErrListNotFound  = errors.New("list not found")
)
