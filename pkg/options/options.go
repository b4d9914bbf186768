package options

func Bool(value bool) *bool {
	v := value
	return &v
}

func String(value string) *string {
	v := value
	return &v
}

// True reports whether an optional flag is set and true
func True(value *bool) bool {
	return value != nil && *value
}
