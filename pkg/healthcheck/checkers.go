package healthcheck

import (
	"context"
	"errors"
)

var errNotReady = errors.New("服務未就緒")

// FuncChecker 以函數執行檢查，例如 Redis PING
type FuncChecker struct {
	Name_ string
	Fn    func(ctx context.Context) error
}

// Name 返回檢查器的名稱
func (f *FuncChecker) Name() string {
	if f.Name_ != "" {
		return f.Name_
	}
	return "func-checker"
}

// Check 執行檢查函數
func (f *FuncChecker) Check(ctx context.Context) error {
	if f.Fn == nil {
		return errors.New("檢查函數未配置")
	}
	return f.Fn(ctx)
}
