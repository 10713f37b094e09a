package usecase

import (
	"cinema-screening/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Screening ScreeningService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Screening: NewScreeningService(repo, log),
	}
}
