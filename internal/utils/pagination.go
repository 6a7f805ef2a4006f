package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

var ErrInvalidPagination = errors.New("page must be >= 1 and size between 1 and 100")

// ParsePagination reads the page/size query parameters. Pages are 1-based;
// size is capped at 100.
func ParsePagination(c *gin.Context) (page, size int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPagination
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 || size > maxSize {
		return 0, 0, ErrInvalidPagination
	}
	return page, size, nil
}

// Offset converts a 1-based page into a row offset.
func Offset(page, size int) int {
	return (page - 1) * size
}

// TotalPages is ceil(total/size) with a floor of one page, so an empty
// result set still reports pages=1.
func TotalPages(total int64, size int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}
