package state

import "time"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния диалога составления встречи
	StateMeetingDuration  UserState = "meeting_duration"
	StateMeetingMandatory UserState = "meeting_mandatory"
	StateMeetingOptional  UserState = "meeting_optional"
	StateMeetingEvents    UserState = "meeting_events"
)

// Ключи временных данных
const (
	KeyDraft = "draft"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State    UserState
	Data     map[string]interface{} // Временные данные для текущего диалога
	LastSeen time.Time
}
