package pagination

// CalculateOffset calculates the database OFFSET value based on page number
// and page size. Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * pageSize
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. An empty result set still counts as one page.
//
// Examples:
//   - Total 0, PageSize 10 -> 1 page
//   - Total 10, PageSize 10 -> 1 page
//   - Total 11, PageSize 10 -> 2 pages
func CalculateTotalPages(total int64, pageSize int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
