package draw

import (
	"fmt"
)

// LotteryError 代表模擬器可恢復的輸入或狀態錯誤
type LotteryError struct {
	Code    string
	Message string
}

// Error 實現error接口
func (e *LotteryError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is 實現errors.Is接口，以錯誤碼比較
func (e *LotteryError) Is(target error) bool {
	t, ok := target.(*LotteryError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// 預定義錯誤
var (
	// 號碼錯誤
	ErrInvalidPrediction = &LotteryError{
		Code:    "INVALID_PREDICTION",
		Message: "每組號碼必須恰好選擇 6 個",
	}

	ErrInvalidBall = &LotteryError{
		Code:    "INVALID_BALL",
		Message: "無效的球號",
	}

	ErrDuplicateBall = &LotteryError{
		Code:    "DUPLICATE_BALL",
		Message: "重複的球號",
	}

	// 回合錯誤
	ErrInvalidRoundCount = &LotteryError{
		Code:    "INVALID_ROUND_COUNT",
		Message: "回合數必須是有效的數字",
	}

	// 會話錯誤
	ErrSessionNotFound = &LotteryError{
		Code:    "SESSION_NOT_FOUND",
		Message: "找不到模擬會話",
	}

	// 參數錯誤
	ErrInvalidParameter = &LotteryError{
		Code:    "INVALID_PARAMETER",
		Message: "無效的參數",
	}
)

// NewLotteryError 創建新的錯誤
func NewLotteryError(code, message string) *LotteryError {
	return &LotteryError{
		Code:    code,
		Message: message,
	}
}

// NewLotteryErrorWithFormat 使用格式化字串創建新的錯誤
func NewLotteryErrorWithFormat(code string, format string, args ...interface{}) *LotteryError {
	return &LotteryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
