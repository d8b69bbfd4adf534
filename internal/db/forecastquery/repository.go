package forecastquery

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogForecastQuery(kind string, latitude, longitude float64, periods int, succeeded bool) error
	GetRecentForecastQuery(kind string) (*ForecastQuery, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) LogForecastQuery(kind string, latitude, longitude float64, periods int, succeeded bool) error {
	query := ForecastQuery{
		Kind:      kind,
		Latitude:  latitude,
		Longitude: longitude,
		Periods:   periods,
		Succeeded: succeeded,
		CreatedAt: time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *ForecastSQLRepository) GetRecentForecastQuery(kind string) (*ForecastQuery, error) {
	var query ForecastQuery
	err := r.db.Where("kind = ?", kind).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
