package functional

func Map[T, V any](slice []T, f func(T) V) []V {
	result := make([]V, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}

	return result
}

// Filter keeps the elements for which keep returns true, preserving order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}

func Any[T any](slice []T, f func(T) bool) bool {
	for _, v := range slice {
		if f(v) {
			return true
		}
	}
	return false
}

// Window returns slice[offset:offset+limit] clamped to the bounds of slice.
func Window[T any](slice []T, offset int, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(slice) {
		return []T{}
	}
	end := offset + limit
	if end > len(slice) || end < offset {
		end = len(slice)
	}
	return slice[offset:end]
}
