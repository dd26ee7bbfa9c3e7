package utils

import "github.com/google/uuid"

// NewTransactionID 生成全局唯一的交易流水号
// 流水号由服务端生成，调用方不可指定
func NewTransactionID() string {
	return uuid.NewString()
}
