package service

// Notifier отправляет короткие уведомления о записях (например, в Telegram)
type Notifier interface {
	Notify(text string) error
}

type noopNotifier struct{}

func (noopNotifier) Notify(string) error { return nil }
