package events

// Topics connecting the session store, notification channel and page
// controllers. Payloads are plain values so subscribers never share state
// with the publisher.

var SessionChangedTopic = "SessionChangedEvent"

type SessionChanged struct {
	Authenticated bool
}

var NotificationPostedTopic = "NotificationPostedEvent"

type NotificationPosted struct {
	Slot    string
	Message string
}

var NotificationClearedTopic = "NotificationClearedEvent"

type NotificationCleared struct {
	Slot string
}

var JobCreatedTopic = "JobCreatedEvent"

type JobCreated struct {
	JobID     int
	CompanyID int
	Title     string
}
