package repository

import (
	"fire_planner_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var u model.User
	err := r.DB.First(&u, "id = ?", id).Error
	return &u, err
}

func (r *UserRepository) FindByWhopUserID(whopUserID string) (*model.User, error) {
	var u model.User
	err := r.DB.First(&u, "whop_user_id = ?", whopUserID).Error
	return &u, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}
