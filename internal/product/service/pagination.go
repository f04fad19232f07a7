package service

import (
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// paginationParams menormalkan page/limit mentah dari query string.
// Input tidak valid di-clamp, tidak pernah ditolak: page minimal 1,
// limit di-clamp ke [1, 100], offset = (page-1)*limit.
func paginationParams(page, limit string) (int, int, int) {
	p := defaultPage
	if v, err := strconv.Atoi(page); err == nil && v > 1 {
		p = v
	}

	l := defaultLimit
	if v, err := strconv.Atoi(limit); err == nil {
		switch {
		case v < 1:
			l = 1
		case v > maxLimit:
			l = maxLimit
		default:
			l = v
		}
	}

	return p, l, (p - 1) * l
}
