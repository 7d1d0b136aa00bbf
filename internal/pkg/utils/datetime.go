package utils

import (
	"strings"
	"time"
)

const (
	DateLayout           = "2006-01-02"
	DateTimeLocalLayout  = "2006-01-02T15:04"
	DateTimeSecondLayout = "2006-01-02T15:04:05"
)

var zonelessLayouts = []string{
	DateTimeLocalLayout,
	DateTimeSecondLayout,
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDateTime accepts the date and date-time shapes produced by browser
// form inputs and by ISO serialisation. Values without a zone are read in
// time.Local.
func ParseDateTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, true
	}
	for _, layout := range zonelessLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func IsDateTime(value string) bool {
	_, ok := ParseDateTime(value)
	return ok
}

// AgeInYears counts whole years, dropping one when this year's birthday has
// not been reached yet.
func AgeInYears(birthDate string, now time.Time) (int, bool) {
	born, ok := ParseDateTime(birthDate)
	if !ok {
		return 0, false
	}
	years := now.Year() - born.Year()
	months := int(now.Month()) - int(born.Month())
	if months < 0 || (months == 0 && now.Day() < born.Day()) {
		years--
	}
	return years, true
}

// AgeInMonths ignores the day of month, so it can run ahead of the calendar
// age by up to one month.
func AgeInMonths(birthDate string, now time.Time) (int, bool) {
	born, ok := ParseDateTime(birthDate)
	if !ok {
		return 0, false
	}
	return (now.Year()-born.Year())*12 + (int(now.Month()) - int(born.Month())), true
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTimeLocal(t time.Time) string {
	return t.Format(DateTimeLocalLayout)
}
