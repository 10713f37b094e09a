package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Screening ScreeningRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Screening: NewScreeningRepository(log),
	}
}
