package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"utc midnight", "2023-12-01T00:00:00Z", "2023年12月01日"},
		{"crosses midnight under +9h", "2023-12-17T16:00:00Z", "2023年12月18日"},
		{"just before the shift", "2023-12-17T14:59:59Z", "2023年12月17日"},
		{"fractional seconds", "2024-12-01T00:00:00.000Z", "2024年12月01日"},
		{"naive is utc", "2023-12-31T15:00:00", "2024年01月01日"},
		{"explicit offset", "2023-12-17T01:00:00+09:00", "2023年12月17日"},
		{"date only", "2024-02-29", "2024年02月29日"},
		{"surrounding spaces", "  2023-06-30T20:00:00Z ", "2023年07月01日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2023/12/01", "2023-13-01T00:00:00Z", "12-01-2023"} {
		_, err := FormatDate(in)
		assert.Error(t, err, in)
	}
}

func TestFormatStampAndMinute(t *testing.T) {
	ts := time.Date(2023, 12, 17, 16, 5, 9, 0, time.UTC)

	assert.Equal(t, "2023年12月18日01時05分09秒", FormatStamp(ts))
	assert.Equal(t, "2023年12月18日01時05分", FormatMinute(ts))
}
