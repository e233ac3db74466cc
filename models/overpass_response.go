package models

// OverpassResponse is a successful interpreter response. Body is never
// inspected, only passed through.
type OverpassResponse struct {
	Body        []byte
	ContentType string
	FromCache   bool
}

// SizeKB reports the body size in whole kilobytes (1 kB = 1000 bytes).
func (r *OverpassResponse) SizeKB() int {
	return len(r.Body) / 1000
}
