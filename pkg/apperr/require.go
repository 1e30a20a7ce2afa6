package apperr

// RequirePresent converts a comma-ok lookup into a not-found error.
// It is the boundary where an absent value becomes the single failure signal
// for a required entity.
//
//	order, ok := cache[id]
//	order, err := apperr.RequirePresent(order, ok, "Order", id)
func RequirePresent[T any](value T, ok bool, entity string, id int64) (T, Err) {
	if !ok {
		var zero T
		return zero, NotFoundEntity(entity, id)
	}
	return value, nil
}

// RequireFound dereferences value or reports entity as not found when it is nil.
func RequireFound[T any](value *T, entity string, id int64) (T, Err) {
	if value == nil {
		var zero T
		return zero, NotFoundEntity(entity, id)
	}
	return *value, nil
}

// RequireNonNil dereferences value or rejects it as not acceptable when it is nil.
// key names the missing value in the message and defaults to "Item".
func RequireNonNil[T any](value *T, key string) (T, Err) {
	if value == nil {
		if key == "" {
			key = "Item"
		}
		var zero T
		return zero, NotAcceptable(key + " can't be null")
	}
	return *value, nil
}
