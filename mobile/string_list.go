package mobile

// StringList carries a string slice across the gomobile boundary, which
// cannot pass slices of strings directly.
type StringList struct {
	items []string
}

func (l *StringList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the i-th item, or "" when i is out of range.
func (l *StringList) Get(i int) string {
	if l == nil || i < 0 || i >= len(l.items) {
		return ""
	}
	return l.items[i]
}
