package entity

// NotificationLevel xabar turi
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
)

// Notification foydalanuvchiga ko'rsatiladigan xabar
type Notification struct {
	Level   NotificationLevel
	Message string
}
