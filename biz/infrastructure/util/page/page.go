package page

import "listening-show/biz/application/dto/basic"

const maxLimit = int64(100)

// ParsePageOpt 未传分页参数时 ok 为 false, 调用方返回全部数据
func ParsePageOpt(p *basic.PaginationOptions) (skip int64, limit int64, ok bool) {
	if p == nil || p.Page == nil || p.Limit == nil {
		return 0, 0, false
	}
	page, limit := *p.Page, *p.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return (page - 1) * limit, limit, true
}

// Slice 对已排好序的结果分页
func Slice[T any](items []T, p *basic.PaginationOptions) []T {
	skip, limit, ok := ParsePageOpt(p)
	if !ok {
		return items
	}
	if skip >= int64(len(items)) {
		return []T{}
	}
	end := skip + limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[skip:end]
}
