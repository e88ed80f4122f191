package logging

import (
	"fmt"
	"log/slog"
)

func Error(err error) slog.Attr {
	if err == nil {
		slog.Error("Going to log nil error")
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

func Slot(index int) slog.Attr {
	return slog.Int("slot", index)
}

func Outcome(o fmt.Stringer) slog.Attr {
	return slog.String("outcome", o.String())
}

func Item(name string, quantity uint32) slog.Attr {
	return slog.Group("item",
		slog.String("name", name),
		slog.Uint64("quantity", uint64(quantity)),
	)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}
