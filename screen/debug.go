//go:build !vdbdebug

package screen

const debugChecks = false

// invalid reports a caller bug. The offending call draws nothing.
func invalid(msg string, args ...any) {
	Logger().Debug("screen: "+msg, args...)
}
