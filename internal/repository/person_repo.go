package repository

import (
	"context"

	"github.com/lxh0508/elerp/internal/model"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	List(ctx context.Context, page, limit int) ([]model.Person, int64, error)
	Update(ctx context.Context, person *model.Person) error
	Delete(ctx context.Context, id int64) error
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	return GetDB(ctx, r.db).Create(person).Error
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	var person model.Person
	if err := GetDB(ctx, r.db).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) List(ctx context.Context, page, limit int) ([]model.Person, int64, error) {
	var persons []model.Person
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Person{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("name").Offset(offset).Limit(limit).Find(&persons).Error; err != nil {
		return nil, 0, err
	}

	return persons, total, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) error {
	return GetDB(ctx, r.db).Save(person).Error
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	return GetDB(ctx, r.db).Delete(&model.Person{}, id).Error
}
