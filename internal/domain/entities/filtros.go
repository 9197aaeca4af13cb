package entities

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

var ErrInvalidDate = errors.New("invalid date")

const dateOnly = "2006-01-02"

// ParseDataFiltro parses an RFC3339 timestamp or a bare date. A bare date is the start
// of the day, or its last nanosecond when endOfDay is set, in loc.
func ParseDataFiltro(v string, endOfDay bool, loc *time.Location) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t, nil
	}
	d, err := time.ParseInLocation(dateOnly, v, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endOfDay {
		d = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &d, nil
}

// DayBounds returns [00:00, 23:59:59.999999999] of day in day's location.
func DayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SortByCriacaoDesc orders newest first; ties keep protocol order for stable output.
func SortByCriacaoDesc(ms []Manifestacao) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].DataCriacao.Equal(ms[j].DataCriacao) {
			return ms[i].Protocolo > ms[j].Protocolo
		}
		return ms[i].DataCriacao.After(ms[j].DataCriacao)
	})
}

// Paginate slices an already filtered and sorted list. A limit of zero or less returns
// everything as a single page.
func Paginate(ms []Manifestacao, page, limit int) ListResult {
	if ms == nil {
		ms = []Manifestacao{}
	}
	total := len(ms)
	if limit <= 0 {
		return ListResult{Items: ms, Total: total, Page: 1, Limit: total, TotalPages: 1}
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := make([]Manifestacao, end-start)
	copy(items, ms[start:end])
	return ListResult{Items: items, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
