package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/infrastructure/persistence/models"
)

// UserMapper converts between user.User and models.UserModel.
type UserMapper interface {
	ToModel(u *user.User) (*models.UserModel, error)
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(list []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) (*models.UserModel, error) {
	caps, err := json.Marshal(u.Capabilities().Strings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal capabilities: %w", err)
	}

	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name().String(),
		LastName:     u.LastName().String(),
		Capabilities: datatypes.JSON(caps),
		IsActive:     u.IsActive(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email (id=%d): %w", model.ID, err)
	}
	name, err := vo.NewOptionalName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid stored name (id=%d): %w", model.ID, err)
	}
	lastName, err := vo.NewOptionalName(model.LastName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored last name (id=%d): %w", model.ID, err)
	}

	var rawCaps []string
	if len(model.Capabilities) > 0 {
		if err := json.Unmarshal(model.Capabilities, &rawCaps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal capabilities (id=%d): %w", model.ID, err)
		}
	}
	caps, err := vo.ParseCapabilitySet(rawCaps)
	if err != nil {
		return nil, fmt.Errorf("invalid stored capabilities (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		name,
		lastName,
		caps,
		model.IsActive,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToDomainList(list []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(list))
	for i := range list {
		u, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
