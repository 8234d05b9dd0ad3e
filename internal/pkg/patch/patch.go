package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceString returns s unless it is blank, then fallback.
func CoalesceString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func Ptr[T any](v T) *T {
	return &v
}
