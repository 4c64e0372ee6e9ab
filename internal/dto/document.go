// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/file-cms-service/pkg/timex"

// DocumentCreateRequest 创建文档请求参数，扩展名校验由服务层处理
type DocumentCreateRequest struct {
	Name    string `form:"name"`
	Content string `form:"content"`
}

// DocumentEditRequest 编辑文档请求参数
type DocumentEditRequest struct {
	Content string `form:"content"`
}

// DocumentDuplicateRequest 复制文档请求参数
type DocumentDuplicateRequest struct {
	Name string `form:"name"`
}

// DocumentDTO 文档数据传输对象
type DocumentDTO struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// HistoryEntryDTO 单条历史记录，Current 标记该快照是否与当前内容一致
type HistoryEntryDTO struct {
	File      string     `json:"file"`
	Author    string     `json:"author"`
	CreatedAt timex.Time `json:"createdAt"`
	Current   bool       `json:"current"`
}
