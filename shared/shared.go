package shared

import (
	"math"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/google/uuid"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate slices items for the requested page. An unpaginated query returns everything.
func Paginate[T any](items []T, query dto.QueryParams) dto.ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	if !query.Paginated() {
		return dto.ListResponse[T]{Items: items}
	}

	page := max(query.Page, constant.DefaultValuePage)
	total := len(items)

	start := min((page-1)*query.Limit, total)
	end := min(start+query.Limit, total)

	return dto.ListResponse[T]{
		Items: items[start:end],
		Pagination: &dto.Pagination{
			Page:      page,
			Limit:     query.Limit,
			Total:     total,
			TotalPage: CalculateTotalPage(total, query.Limit),
		},
	}
}

// NewID returns a short random identifier, the first eight characters of a v4 UUID, that is not
// yet taken according to exists.
func NewID(exists func(id string) bool) string {
	for {
		id := uuid.NewString()[:constant.IDLength]
		if exists == nil || !exists(id) {
			return id
		}
	}
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
