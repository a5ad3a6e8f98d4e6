package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Page struct {
	Data  any       `json:"data"`
	Meta  PageMeta  `json:"meta"`
	Links PageLinks `json:"links"`
}

// NewPage wraps one page of results in the meta/links pagination block.
// count is the number of items on this page, total the count across pages.
func NewPage(c *gin.Context, page, perPage, count int, total int64, data any) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	var from, to *int
	if count > 0 {
		f := (page-1)*perPage + 1
		t := f + count - 1
		from, to = &f, &t
	}

	var prev, next *string
	if page > 1 {
		u := pageURL(c, page-1)
		prev = &u
	}
	if page < lastPage {
		u := pageURL(c, page+1)
		next = &u
	}

	return Page{
		Data: data,
		Meta: PageMeta{
			CurrentPage: page,
			From:        from,
			LastPage:    lastPage,
			Path:        c.Request.URL.Path,
			PerPage:     perPage,
			To:          to,
			Total:       total,
		},
		Links: PageLinks{
			First: pageURL(c, 1),
			Last:  pageURL(c, lastPage),
			Prev:  prev,
			Next:  next,
		},
	}
}

func pageURL(c *gin.Context, page int) string {
	query := c.Request.URL.Query()
	query.Set("page", strconv.Itoa(page))
	return fmt.Sprintf("%s?%s", c.Request.URL.Path, query.Encode())
}
