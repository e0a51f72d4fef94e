package errors

// StatusOf exposes the rendered status for assertions.
func StatusOf(data any) int { return data.(pageData).Status }

// MessageOf exposes the rendered message for assertions.
func MessageOf(data any) string { return data.(pageData).Message }
