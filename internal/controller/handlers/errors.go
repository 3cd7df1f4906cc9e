package handlers

import (
	"errors"

	"github.com/Freeeeeet/meeting_bot/internal/calendar"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

var (
	errBadDuration = errors.New("cannot parse duration")
	errBadDate     = errors.New("cannot parse date")
	errNotCalendar = errors.New("file is not an iCalendar")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return "❌ Пользователь не найден. Используйте /start"
	case errors.Is(err, service.ErrNoDraft):
		return "❌ Нет черновика встречи. Начните с /newmeeting"
	case errors.Is(err, service.ErrNoDuration):
		return "❌ Сначала укажите длительность встречи"
	case errors.Is(err, service.ErrInvalidDuration), errors.Is(err, errBadDuration):
		return "❌ Длительность от 1 минуты до 24 часов, например: 45, 1:30 или 2ч"
	case errors.Is(err, service.ErrEmptyName):
		return "❌ Пустое имя участника"
	case errors.Is(err, errBadDate):
		return "❌ Неверная дата. Формат ДД.ММ.ГГГГ или ГГГГ-ММ-ДД"
	case errors.Is(err, service.ErrTooManyEvents):
		return "❌ Слишком много событий в одном черновике"
	case errors.Is(err, errNotCalendar):
		return "❌ Пришлите файл календаря .ics"
	case errors.Is(err, calendar.ErrInvalidClock):
		return "❌ Неверное время. Формат ЧЧ:ММ, например 09:30"
	case errors.Is(err, calendar.ErrNoAttendees):
		return "❌ Укажите участников события. Пример: 09:00-10:30 Анна, Борис"
	case errors.Is(err, calendar.ErrInvalidEventLine):
		return "❌ Неверная строка. Пример: 09:00-10:30 Анна, Борис"
	case errors.Is(err, model.ErrInvalidInterval):
		return "❌ Конец события раньше начала"
	default:
		return "❌ Произошла ошибка"
	}
}
