package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{500, "500 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{827392, "808 KB"},
		{1048576, "1 MB"},
		{4089471, "3.9 MB"},
		{1073741824, "1 GB"},
		{1288490188800, "1200 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFileSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}

func TestFormatModified(t *testing.T) {
	ts := time.Date(2019, time.March, 20, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 20, 2019", formatModified(ts))
}
