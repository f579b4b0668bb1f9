package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults for zero values", Params{}, Params{Page: 1, Size: DefaultSize}},
		{"negative page clamps to one", Params{Page: -5, Size: 10}, Params{Page: 1, Size: 10}},
		{"oversize clamps to max", Params{Page: 2, Size: 500}, Params{Page: 2, Size: MaxSize}},
		{"valid passes through", Params{Page: 3, Size: 50}, Params{Page: 3, Size: 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestApply(t *testing.T) {
	values := url.Values{}
	Params{Page: 2, Size: 30}.Apply(values)
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "30", values.Get("size"))
}

func TestApplyNormalizesFirst(t *testing.T) {
	values := url.Values{}
	Params{Page: 0, Size: 0}.Apply(values)
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "20", values.Get("size"))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Size: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Size: 20}.Offset())
	assert.Equal(t, 0, Params{}.Offset())
}
