package utils

// StringPtr returns a pointer to s. Partial pipeline updates use nil to mean "leave unchanged",
// so an empty string still needs a pointer.
func StringPtr(s string) *string {
	return &s
}

// StringFromPtr safely dereferences a string pointer, returning fallback if nil.
func StringFromPtr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
