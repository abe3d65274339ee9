package utils

import "time"

// StickyDateLayout é o formato de data aceito pela API de pedidos (MM/DD/YYYY)
const StickyDateLayout = "01/02/2006"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func FormatStickyDate(date time.Time) string {
	return date.Format(StickyDateLayout)
}

// TruncateToDay remove o horário mantendo a localização
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
