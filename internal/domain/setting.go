package domain

import "time"

const (
	SettingDailyCheckLimit = "daily_check_limit"

	DefaultDailyCheckLimit = 10
)

type Setting struct {
	Key         string
	Value       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
