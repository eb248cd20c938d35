//go:build vdbdebug

package screen

import (
	"fmt"
	"log/slog"
)

const debugChecks = true

func invalid(msg string, args ...any) {
	r := slog.Record{}
	r.Add(args...)
	attrs := ""
	r.Attrs(func(a slog.Attr) bool {
		attrs += " " + a.String()
		return true
	})
	panic(fmt.Sprintf("screen: %s%s", msg, attrs))
}
