package domain

// StrPtr returns a pointer to s. Convenience for optional fields.
func StrPtr(s string) *string { return &s }

// StrFromPtrWithDefault returns the first non-nil *string value, or the fallback.
func StrFromPtrWithDefault(fallback string, ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
