package zabbix

import "io"

// Export internals for white-box testing

var WithClock = withClock

func HiddenInputValue(r io.Reader, name string) string {
	return hiddenInputValue(r, name)
}
