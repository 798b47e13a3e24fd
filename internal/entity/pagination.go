package entity

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// TotalPages returns how many pages a result set of count items occupies.
// A non-positive page size or count yields zero pages.
func TotalPages(count int, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}

	return (count + pageSize - 1) / pageSize
}

// ClampPage clamps a 1-based page number into the valid range for count items.
func ClampPage(count int, pageSize int, page int) int {
	total := TotalPages(count, pageSize)
	if total == 0 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}

	return page
}

// PageBounds returns the half-open [start, end) slice bounds for the given
// 1-based page, after clamping. Both bounds are zero when there are no items.
func PageBounds(count int, pageSize int, page int) (int, int) {
	if count <= 0 || pageSize <= 0 {
		return 0, 0
	}

	page = ClampPage(count, pageSize, page)
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > count {
		end = count
	}

	return start, end
}

// PageInput converts a clamped 1-based page into the limit/offset form the
// repositories consume.
func PageInput(count int, pageSize int, page int) *PaginationInput {
	start, end := PageBounds(count, pageSize, page)

	return NewPaginationInput(end-start, start)
}

// PageNumbers lists the page links to render around the current page: at most
// window numbers, centered on current, shifted to stay inside [1, totalPages].
func PageNumbers(totalPages int, current int, window int) []int {
	if totalPages <= 0 || window <= 0 {
		return []int{}
	}
	if window > totalPages {
		window = totalPages
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	first := current - window/2
	if first < 1 {
		first = 1
	}
	if first+window-1 > totalPages {
		first = totalPages - window + 1
	}

	pages := make([]int, 0, window)
	for p := first; p < first+window; p++ {
		pages = append(pages, p)
	}

	return pages
}
