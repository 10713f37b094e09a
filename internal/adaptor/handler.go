package adaptor

import (
	"cinema-screening/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Screening *ScreeningHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Screening: NewScreeningHandler(service.Screening, log),
	}
}
