package catalog

// Paginate returns the window of items visible on the given 1-based page.
// A page at or below zero clamps to the first page; a page past the end of
// the data yields an empty result. The returned slice aliases items and is
// never longer than pageSize.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
