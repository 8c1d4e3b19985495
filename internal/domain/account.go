package domain

// OneTimeCode is a single-use login code. The string form is what gets
// sent to the user; no expiry or uniqueness is enforced at this layer.
type OneTimeCode string

func (c OneTimeCode) String() string {
	return string(c)
}
