package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Kind records the validator name under "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Field records the validated field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Valid records a validation verdict under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Count records a number of items under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
