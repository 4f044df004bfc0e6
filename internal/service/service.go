package service

import "time"

// timeFormat is the wire format for entity timestamps.
const timeFormat = time.RFC3339

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = defaultSize
	}
	return page, pageSize
}
