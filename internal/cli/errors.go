package cli

import "fmt"

type invalidFlagError struct {
	flag   string
	value  string
	reason string
}

func (e invalidFlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %s", e.flag, e.value, e.reason)
}

func errInvalidFlag(flag, value, reason string) error {
	return invalidFlagError{flag: flag, value: value, reason: reason}
}
