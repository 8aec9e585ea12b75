package service

import (
	"context"
	"errors"

	"github.com/lxh0508/elerp/internal/model"
	"github.com/lxh0508/elerp/internal/repository"
)

type CreatePersonRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Description string `json:"description"`
}

type PersonService interface {
	CreatePerson(ctx context.Context, userID int64, req CreatePersonRequest) (*model.Person, error)
	GetPersonByID(ctx context.Context, id int64) (*model.Person, error)
	ListPersons(ctx context.Context, page, limit int) ([]model.Person, int64, error)
	DeletePerson(ctx context.Context, id int64) error
}

type personService struct {
	repo      repository.PersonRepository
	auditRepo repository.AuditRepository
}

func NewPersonService(repo repository.PersonRepository, auditRepo repository.AuditRepository) PersonService {
	return &personService{repo: repo, auditRepo: auditRepo}
}

func (s *personService) CreatePerson(ctx context.Context, userID int64, req CreatePersonRequest) (*model.Person, error) {
	person := &model.Person{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, &model.AuditLog{
		UserID:     &userID,
		Action:     model.ActionCreatePerson,
		EntityName: person.Name,
	})

	return person, nil
}

func (s *personService) GetPersonByID(ctx context.Context, id int64) (*model.Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("person not found")
	}
	return person, nil
}

func (s *personService) ListPersons(ctx context.Context, page, limit int) ([]model.Person, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.List(ctx, page, limit)
}

func (s *personService) DeletePerson(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("person not found")
	}
	return s.repo.Delete(ctx, id)
}
