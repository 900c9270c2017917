package port

// Cache is a bounded key-value memo shared between goroutines.
// Used to memoize route price lookups between invalidations.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)

	// Set stores value under key, possibly evicting the least recently used entry.
	Set(key K, value V)

	// Remove deletes key. Missing keys are ignored.
	Remove(key K)

	// Len returns the number of stored entries.
	Len() int

	// Clear drops every entry.
	Clear()
}
