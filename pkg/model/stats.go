package model

type Totals struct {
	Today int64
	Week  int64
	Month int64
}

type DailyCups struct {
	Date string `gorm:"column:day"`
	Cups int64
}
