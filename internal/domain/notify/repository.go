package notify

import "context"

// DeliveryLog persists channel results for auditing. Recording is best-effort:
// callers log failures and carry on, a delivery must never fail because its
// audit row could not be written.
type DeliveryLog interface {
	RecordResults(ctx context.Context, eventID int64, results []ChannelResult) error
}
