package notify

// Status is the outcome of one supplier/channel attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // no usable address for the channel; deliberately not attempted
)

// ChannelResult records the outcome of a single delivery attempt (or skip)
// for one supplier on one channel.
type ChannelResult struct {
	SupplierID int64
	Channel    Kind
	Status     Status
	Detail     string // error text for failed attempts, empty otherwise
}

// FanOutSummary aggregates the per-supplier results of one fan-out.
type FanOutSummary struct {
	TotalRecipients int
	Succeeded       int
	Results         []ChannelResult
}
