package format

import (
	"fmt"
	"time"
)

// TimeAgo formats t relative to the current time. See TimeAgoFrom.
func TimeAgo(t *time.Time) string {
	return TimeAgoFrom(t, time.Now())
}

// TimeAgoFrom formats t relative to now: "Just now" under a minute,
// "{n}m ago" under an hour, and "{n}h ago" beyond that. Hours keep counting
// up with no day or week buckets. A nil time yields "".
func TimeAgoFrom(t *time.Time, now time.Time) string {
	if t == nil {
		return ""
	}
	elapsed := now.Sub(*t)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int64(elapsed/time.Minute))
	default:
		return fmt.Sprintf("%dh ago", int64(elapsed/time.Hour))
	}
}
