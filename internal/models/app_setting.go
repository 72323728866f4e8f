package models

// AppSetting is the singleton application settings row (id fixed at 1).
// It carries only what is not part of a configuration version: the
// initial savings the running balance starts from.
type AppSetting struct {
	Base
	InitialSavings int64 `gorm:"not null;default:0" json:"initial_savings"`
}

// AppSettingID is the fixed primary key of the singleton row.
const AppSettingID = 1
