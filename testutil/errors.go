package testutil

// SameErrorString reports whether two errors print the same message.
// Either side may be nil.
func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}
