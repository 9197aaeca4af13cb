package ui

import (
	"strconv"
	"strings"
)

const (
	visiblePages = 5
	// Ellipsis marks a gap in a page window.
	Ellipsis = 0
)

// PageWindow returns the page numbers to show for page current of total: up to five
// consecutive pages around current, plus the first and last page when they fall
// outside the window. Ellipsis separates non-adjacent numbers.
func PageWindow(current, total int) []int {
	if total < 1 {
		return []int{1}
	}
	current = min(max(current, 1), total)

	start := max(1, current-visiblePages/2)
	end := min(total, start+visiblePages-1)
	if end-start < visiblePages-1 {
		start = max(1, end-visiblePages+1)
	}

	out := make([]int, 0, visiblePages+4)
	if start > 1 {
		out = append(out, 1)
		if start > 2 {
			out = append(out, Ellipsis)
		}
	}
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	if end < total {
		if end < total-1 {
			out = append(out, Ellipsis)
		}
		out = append(out, total)
	}
	return out
}

// Pagination renders "‹ 1 … 4 [5] 6 … 9 ›" with a summary of the visible range.
func Pagination(s Styles, current, totalPages, limit, total int) string {
	var parts []string
	if current > 1 {
		parts = append(parts, "‹")
	}
	for _, p := range PageWindow(current, totalPages) {
		switch {
		case p == Ellipsis:
			parts = append(parts, "…")
		case p == current:
			parts = append(parts, s.Active.Render("["+strconv.Itoa(p)+"]"))
		default:
			parts = append(parts, strconv.Itoa(p))
		}
	}
	if current < totalPages {
		parts = append(parts, "›")
	}

	from, to := 0, 0
	if total > 0 {
		from = (current-1)*limit + 1
		to = min(current*limit, total)
		if limit <= 0 {
			from, to = 1, total
		}
	}
	summary := s.Muted.Render("Mostrando " + strconv.Itoa(from) + " a " + strconv.Itoa(to) + " de " + strconv.Itoa(total))
	return strings.Join(parts, " ") + "   " + summary
}
