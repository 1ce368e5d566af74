package httpapi

// NotifyEventRequest is the body of POST /events/:id/notify. The caller
// supplies the recipient list; the service does not resolve it from storage.
type NotifyEventRequest struct {
	Recipients []RecipientDTO `json:"recipients"`
}

type RecipientDTO struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	PushSubscription *string `json:"push_subscription"`
}

type ChannelResultDTO struct {
	RecipientID int64  `json:"recipient_id"`
	Channel     string `json:"channel"`
	Status      string `json:"status"`
	Detail      string `json:"detail,omitempty"`
}

type NotifyEventResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Details []ChannelResultDTO `json:"details"`
}

type SweepResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	EventsProcessed   int    `json:"eventsProcessed"`
	NotificationsSent int    `json:"notificationsSent"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
