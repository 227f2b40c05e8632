package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-task-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// FullList returns parameters selecting the first MaxListSize rows.
func FullList() PaginationParams {
	return PaginationParams{Page: 1, Limit: constants.MaxListSize}
}

// GetPaginationParams extracts pagination parameters from the request.
// Without page or limit in the query the full list is selected.
func GetPaginationParams(c *gin.Context) PaginationParams {
	pageStr, hasPage := c.GetQuery("page")
	limitStr, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return FullList()
	}

	page, _ := strconv.Atoi(pageStr)
	limit, err := strconv.Atoi(limitStr)
	if err != nil || !hasLimit {
		limit = constants.DefaultPageSize
	}

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
