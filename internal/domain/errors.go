package domain

import "errors"

var (
	ErrInvalidInput = errors.New("无效的输入参数")
	ErrEmptyDataset = errors.New("员工列表为空")
)
