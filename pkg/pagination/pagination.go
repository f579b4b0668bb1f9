package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Params holds page/size parameters attached to list requests.
type Params struct {
	Page int
	Size int
}

// Default returns the backend's default paging.
func Default() Params {
	return Params{Page: 1, Size: DefaultSize}
}

// Normalize clamps the parameters into the range the backend accepts:
// page >= 1 and size in [1, MaxSize]. Zero values fall back to defaults.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Apply sets the normalized page/size query parameters on values.
func (p Params) Apply(values url.Values) {
	p = p.Normalize()
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("size", strconv.Itoa(p.Size))
}

// Offset returns the zero-based offset for the normalized parameters.
func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Size
}
