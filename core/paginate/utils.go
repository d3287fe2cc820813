package paginate

// IntPtr is a helper function that returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr is a helper function that returns a pointer to a bool.
func BoolPtr(b bool) *bool {
	return &b
}

// StringPtr is a helper function that returns a pointer to a string.
func StringPtr(s string) *string {
	return &s
}
