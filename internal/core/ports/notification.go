package ports

// NotificationPayload is a best-effort owner notification. Title and Content
// are bounded; oversized payloads are rejected before delivery is attempted.
type NotificationPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

const (
	NotificationTitleMaxLength   = 1200
	NotificationContentMaxLength = 20000
)
