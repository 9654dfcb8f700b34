package cfn

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// ToString returns the value p points to, or "" when p is nil.
func ToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToBool returns the value p points to, or false when p is nil.
func ToBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// ToInt returns the value p points to, or 0 when p is nil.
func ToInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Tag is a key-value pair attached to a resource.
type Tag struct {
	Key   *string `cfn:"Key,required"`
	Value *string `cfn:"Value,required"`
}

// NewTag returns a Tag with both fields set.
func NewTag(key, value string) *Tag {
	return &Tag{Key: String(key), Value: String(value)}
}

func (t *Tag) CFNType() string { return "Tag" }
