package suggest

// DefaultRecentCapacity is how many recent items are kept per category.
const DefaultRecentCapacity = 10

// PushRecent returns a new list with item at the front. An existing copy of
// item is moved rather than duplicated, and the result is truncated to capacity.
func PushRecent(list []string, item string, capacity int) []string {
	if capacity <= 0 {
		capacity = DefaultRecentCapacity
	}

	out := make([]string, 0, min(len(list)+1, capacity))
	out = append(out, item)
	for _, existing := range list {
		if len(out) == capacity {
			break
		}
		if existing == item {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// RemoveRecent returns a copy of list without item.
func RemoveRecent(list []string, item string) []string {
	out := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != item {
			out = append(out, existing)
		}
	}
	return out
}
