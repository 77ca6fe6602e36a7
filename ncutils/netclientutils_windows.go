package ncutils

// IsRoot - privilege elevation is not modelled on windows
func IsRoot() bool {
	return false
}
