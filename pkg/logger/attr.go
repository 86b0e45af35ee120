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

// Component names the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SiteID records the resolved site (artist) identifier.
func SiteID(id string) slog.Attr {
	return slog.String("site_id", id)
}

// Slug records a site slug taken from a URL.
func Slug(slug string) slog.Attr {
	return slog.String("slug", slug)
}

// Page records the active page identifier.
func Page(page string) slog.Attr {
	return slog.String("page", page)
}

// ContentPath records a content path such as "bio.headline".
func ContentPath(path string) slog.Attr {
	return slog.String("content_path", path)
}

// Version records a content version number.
func Version(v int64) slog.Attr {
	return slog.Int64("version", v)
}

// Provider records an email provider name.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// RequestID records the request identifier. Empty ids yield an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Count records a number of items under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
