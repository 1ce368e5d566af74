package alert

// Alerter sends short operational alerts to the configured administrator.
// This decouples the application services from the specific bot library.
type Alerter interface {
	SendAlert(text string) error
}
