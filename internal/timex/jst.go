package timex

import (
	"fmt"
	"strings"
	"time"
)

// JST is the fixed UTC+9 zone every displayed date is rendered in. A fixed
// zone is used so the Lambda image does not need tzdata.
var JST = time.FixedZone("JST", 9*60*60)

const (
	dateLayout   = "2006年01月02日"
	minuteLayout = "2006年01月02日15時04分"
	stampLayout  = "2006年01月02日15時04分05秒"
)

// naive layouts are interpreted as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 date or date-time. A trailing "Z" or an explicit
// offset is honoured; a value without zone information is taken as UTC.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	naive := strings.TrimSuffix(s, "Z")
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, naive, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("not an ISO-8601 date: %q", s)
}

// FormatDate converts an ISO-8601 instant to its UTC+9 calendar date,
// rendered as YYYY年MM月DD日.
func FormatDate(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.In(JST).Format(dateLayout), nil
}

// FormatMinute renders t in UTC+9 as YYYY年MM月DD日HH時MM分.
func FormatMinute(t time.Time) string {
	return t.In(JST).Format(minuteLayout)
}

// FormatStamp renders t in UTC+9 as YYYY年MM月DD日HH時MM分SS秒.
func FormatStamp(t time.Time) string {
	return t.In(JST).Format(stampLayout)
}
