package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params are page-based list parameters taken from the query string.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FromQuery reads page/limit with a per-endpoint default page size.
func FromQuery(c *gin.Context, defaultLimit int) Params {
	page, _ := strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Meta is the envelope counterpart of Params in list responses.
type Meta struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

func NewMeta(p Params, total int64) Meta {
	last := int(total) / p.Limit
	if int(total)%p.Limit != 0 || last == 0 {
		last++
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, LastPage: last}
}
