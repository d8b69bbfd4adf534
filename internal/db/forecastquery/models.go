package forecastquery

import (
	"time"
)

type ForecastQuery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kind      string    `json:"kind" gorm:"index:idx_kind;index:idx_kind_created_at"`
	Latitude  float64   `json:"latitude" gorm:"column:latitude"`
	Longitude float64   `json:"longitude" gorm:"column:longitude"`
	Periods   int       `json:"periods" gorm:"column:periods"`
	Succeeded bool      `json:"succeeded" gorm:"column:succeeded"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_kind_created_at"`
}

func (ForecastQuery) TableName() string {
	return "forecast_queries"
}
