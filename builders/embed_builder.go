package builders

import (
	"time"

	"attendbot/dto"
)

// EmbedBuilder giúp tạo embed theo từng bước
type EmbedBuilder struct {
	embed *dto.Embed
}

// NewEmbedBuilder tạo instance mới của EmbedBuilder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &dto.Embed{},
	}
}

// WithTitle thêm tiêu đề
func (b *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// WithDescription thêm mô tả
func (b *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// WithColor thêm màu
func (b *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// AddField thêm một field, bỏ qua field rỗng vì Discord từ chối value rỗng
func (b *EmbedBuilder) AddField(name, value string) *EmbedBuilder {
	if name == "" || value == "" {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, dto.EmbedField{Name: name, Value: value})
	return b
}

// WithFooter thêm footer
func (b *EmbedBuilder) WithFooter(text string) *EmbedBuilder {
	b.embed.Footer = &dto.EmbedFooter{Text: text}
	return b
}

// WithTimestamp thêm thời điểm
func (b *EmbedBuilder) WithTimestamp(t time.Time) *EmbedBuilder {
	b.embed.Timestamp = t.UTC().Format(time.RFC3339)
	return b
}

// Build tạo embed hoàn chỉnh
func (b *EmbedBuilder) Build() dto.Embed {
	return *b.embed
}
