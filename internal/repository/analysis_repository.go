package repository

import (
	"fire_planner_backend/internal/model"

	"gorm.io/gorm"
)

type AnalysisRepository struct {
	DB *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{DB: db}
}

func (r *AnalysisRepository) Create(a *model.Analysis) error {
	return r.DB.Create(a).Error
}

// ListByUser returns a user's analyses newest-first.
func (r *AnalysisRepository) ListByUser(userID string) ([]model.Analysis, error) {
	var as []model.Analysis
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AnalysisRepository) FindByID(id string) (*model.Analysis, error) {
	var a model.Analysis
	err := r.DB.First(&a, "id = ?", id).Error
	return &a, err
}
