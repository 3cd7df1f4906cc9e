package formatting

// pluralize выбирает форму слова для числа: одно окно, два окна, пять окон
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeWindows возвращает правильное склонение слова "окно"
func PluralizeWindows(count int) string {
	return pluralize(count, "окно", "окна", "окон")
}

// PluralizeEvents возвращает правильное склонение слова "событие"
func PluralizeEvents(count int) string {
	return pluralize(count, "событие", "события", "событий")
}

// PluralizeAttendees возвращает правильное склонение слова "участник"
func PluralizeAttendees(count int) string {
	return pluralize(count, "участник", "участника", "участников")
}
