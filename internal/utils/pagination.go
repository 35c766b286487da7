package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxLimit = 200

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// Meta describes a page of results in list responses.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ParsePagination reads page and limit query params. ok is false when the
// request asked for no paging, in which case callers return everything.
func ParsePagination(c *fiber.Ctx) (Pagination, bool) {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return Pagination{}, false
	}

	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", "50"), 50)
	if limit <= 0 {
		limit = 50
	}
	limit = min(limit, maxLimit)
	if page <= 0 {
		page = 1
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, true
}

// Paginate returns the slice of items selected by p.
func Paginate[T any](items []T, p Pagination) ([]T, Meta) {
	meta := Meta{Page: p.Page, Limit: p.Limit, Total: len(items)}
	if p.Offset >= len(items) {
		return []T{}, meta
	}
	end := min(p.Offset+p.Limit, len(items))
	return items[p.Offset:end], meta
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
