package model

import "time"

// NotificationField is one labeled value in a rich notification.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is the gateway-agnostic rendering of one outbound message.
// The Discord adapter maps it onto an embed; nothing in here depends on the
// chat platform's wire format.
type Notification struct {
	Title         string
	URL           string
	Description   string
	AuthorName    string
	AuthorIconURL string
	AuthorURL     string
	Fields        []NotificationField
	FooterText    string
	Timestamp     time.Time
	Color         int
}
