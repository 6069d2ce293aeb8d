package models

import (
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/store"
)

// Video is the request-scoped projection of one row of the videos table.
// UploadedAt is RFC 3339, assigned by the server at creation and immutable
// afterwards.
type Video struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	UploadedAt string  `json:"uploadedAt"`
}

// Column names of the videos table.
const (
	ColID       = "id"
	ColTitle    = "title"
	ColDuration = "duration"
	ColUploadAt = "upload_at"
)

// Columns lists the videos table columns in declaration order.
func Columns() []string {
	return []string{ColID, ColTitle, ColDuration, ColUploadAt}
}

// VideoFromRow converts a stored row into a Video, coercing driver-specific
// value types.
func VideoFromRow(row store.Row) Video {
	return Video{
		ID:         asString(row[ColID]),
		Title:      asString(row[ColTitle]),
		Duration:   asFloat(row[ColDuration]),
		UploadedAt: asString(row[ColUploadAt]),
	}
}

// Row converts the entity into its persisted shape.
func (v Video) Row() store.Row {
	return store.Row{
		ColID:       v.ID,
		ColTitle:    v.Title,
		ColDuration: v.Duration,
		ColUploadAt: v.UploadedAt,
	}
}

// CreateVideoRequest is the POST /videos payload. Fields are decoded as any
// so that a wrong JSON type can be told apart from an absent field.
type CreateVideoRequest struct {
	ID       any `json:"id"`
	Title    any `json:"title"`
	Duration any `json:"duration"`
}

// UpdateVideoRequest is the PUT /videos/{id} payload. Both fields are
// optional; a present field must still carry the right JSON type.
type UpdateVideoRequest struct {
	Title    any `json:"title"`
	Duration any `json:"duration"`
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
