package notify

// Мост для доступа внешнего тестового пакета к неэкспортируемым идентификаторам.
var (
	SplitEmails = splitEmails
	Recipients  = (*Notifier).recipients
)
