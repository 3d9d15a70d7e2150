package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

// Client notifies the operator about run outcomes. Notifications are
// best-effort; a failed send never affects the pipeline.
type Client interface {
	NotifyError(msg string)
	NotifyInfo(msg string)
}
