package util

import (
	"strconv"
	"strings"
)

// FormatPrice formats a nightly price in rupees, e.g. "₹1200/night".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return "₹" + s + "/night"
}

// FormatStars renders a 1-5 rating as filled and empty stars
// (e.g. "★★★☆☆"). Out-of-range values are clamped.
func FormatStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < rating {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// FormatApproval renders the approval flag the way the admin list shows
// it.
func FormatApproval(approved bool) string {
	if approved {
		return "Approved"
	}
	return "Pending"
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
