package handlers

// Callback data
const (
	CallbackDuration      = "duration:" // duration:60
	CallbackSkipMandatory = "meeting:skip_mandatory"
	CallbackSkipOptional  = "meeting:skip_optional"
	CallbackShowDraft     = "meeting:draft"
	CallbackFind          = "meeting:find"
)

// Предустановленные длительности встречи в минутах
var durationPresets = []int{15, 30, 45, 60, 90, 120}

// Ограничения на импорт календаря
const (
	maxCalendarFileSize = 1 << 20 // 1 МБ
	maxEventsPerDraft   = 500
)
