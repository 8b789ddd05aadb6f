package usecase

import (
	"context"
	"errors"
	"strings"

	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase/interfaces"
)

var ErrInvalidArchitectID = errors.New("invalid architect id")

// IArchitectUseCase exposes architect reads so accrued discounts are
// observable. Writes go exclusively through the incentive accrual.

type IArchitectUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Architect, error)
}

type ArchitectUseCase struct {
	repo interfaces.IArchitectRepository
}

var _ IArchitectUseCase = (*ArchitectUseCase)(nil)

func NewArchitectUseCase(repo interfaces.IArchitectRepository) *ArchitectUseCase {
	return &ArchitectUseCase{repo: repo}
}

func (u *ArchitectUseCase) GetByID(ctx context.Context, id string) (entities.Architect, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Architect{}, ErrInvalidArchitectID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Architect{}, err
	}
	if a.ID == "" {
		return entities.Architect{}, ErrArchitectNotFound
	}
	return a, nil
}
