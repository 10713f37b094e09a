package usecase

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"

	"cinema-screening/internal/data/entity"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/pkg/utils"

	"go.uber.org/zap"
)

type ScreeningService interface {
	CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error)
	Reserve(ctx context.Context, screeningID int64, req *request.ReservationRequest) (*response.ScreeningResponse, error)
	Reschedule(ctx context.Context, screeningID int64, req *request.RescheduleRequest) (*response.ScreeningResponse, error)
	GetScreening(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error)
	ListScreenings(ctx context.Context, title *string) iter.Seq[response.ScreeningResponse]
	DeleteAll(ctx context.Context)
}

type screeningService struct {
	// mu makes every read-check-write on the store a single step.
	mu   sync.RWMutex
	repo *repository.Repository
	log  *zap.Logger
}

func NewScreeningService(
	repo *repository.Repository,
	log *zap.Logger,
) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error) {
	// Validate request data
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", violations))
		return nil, newValidationError(violations)
	}

	date, err := utils.ParseDateTime(req.Date)
	if err != nil {
		return nil, newValidationError([]utils.Violation{{Field: "date", Message: err.Error()}})
	}

	// Allocate id and store under one lock so ids follow insertion order
	s.mu.Lock()
	screening := &entity.Screening{
		ID:          s.repo.Screening.NextID(),
		Title:       req.Title,
		Date:        date,
		TotalSpaces: *req.TotalSpace,
		FreeSpaces:  *req.TotalSpace,
	}
	s.repo.Screening.Add(screening)
	resp := response.ScreeningToResponse(screening)
	s.mu.Unlock()

	s.log.Info("Screening created",
		zap.Int64("screening_id", resp.ID),
		zap.String("title", resp.Title),
		zap.Int("total_spaces", resp.TotalSpaces),
	)

	return &resp, nil
}

func (s *screeningService) Reserve(ctx context.Context, screeningID int64, req *request.ReservationRequest) (*response.ScreeningResponse, error) {
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		return nil, newValidationError(violations)
	}
	reserved := *req.ReservedSpaces

	// Lookup, capacity check and decrement must not interleave with other writers
	s.mu.Lock()
	defer s.mu.Unlock()

	screening := s.repo.Screening.FindByID(screeningID)
	if screening == nil {
		s.log.Warn("Reserve on unknown screening", zap.Int64("screening_id", screeningID))
		return nil, fmt.Errorf("%w: id %d", ErrScreeningNotFound, screeningID)
	}

	// Rejected reservations leave the screening untouched
	if err := screening.ReserveSpaces(reserved); err != nil {
		s.log.Warn("Reservation rejected",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
			zap.Int("reserved_spaces", reserved),
			zap.Int("free_spaces", screening.FreeSpaces),
		)
		return nil, fmt.Errorf("%w: %w", ErrInvalidReservation, err)
	}

	s.log.Info("Seats reserved",
		zap.Int64("screening_id", screeningID),
		zap.Int("reserved_spaces", reserved),
		zap.Int("free_spaces", screening.FreeSpaces),
	)

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) Reschedule(ctx context.Context, screeningID int64, req *request.RescheduleRequest) (*response.ScreeningResponse, error) {
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		return nil, newValidationError(violations)
	}

	date, err := utils.ParseDateTime(req.Date)
	if err != nil {
		return nil, newValidationError([]utils.Violation{{Field: "date", Message: err.Error()}})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	screening := s.repo.Screening.FindByID(screeningID)
	if screening == nil {
		s.log.Warn("Reschedule on unknown screening", zap.Int64("screening_id", screeningID))
		return nil, fmt.Errorf("%w: id %d", ErrScreeningNotFound, screeningID)
	}

	// No future-date check, any valid date-time replaces the old one
	previous := screening.Date
	screening.Date = date

	s.log.Info("Screening rescheduled",
		zap.Int64("screening_id", screeningID),
		zap.Time("from", previous),
		zap.Time("to", date),
	)

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) GetScreening(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	screening := s.repo.Screening.FindByID(screeningID)
	if screening == nil {
		return nil, fmt.Errorf("%w: id %d", ErrScreeningNotFound, screeningID)
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

// ListScreenings yields screenings whose title equals title ignoring case, or
// every screening when title is nil. Views are taken under the read lock and
// yielded after it is released.
func (s *screeningService) ListScreenings(ctx context.Context, title *string) iter.Seq[response.ScreeningResponse] {
	return func(yield func(response.ScreeningResponse) bool) {
		// Snapshot matching views
		s.mu.RLock()
		var views []response.ScreeningResponse
		for screening := range s.repo.Screening.All() {
			if title != nil && !strings.EqualFold(screening.Title, *title) {
				continue
			}
			views = append(views, response.ScreeningToResponse(screening))
		}
		s.mu.RUnlock()

		for _, view := range views {
			if !yield(view) {
				return
			}
		}
	}
}

func (s *screeningService) DeleteAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear also resets the id counter
	count := s.repo.Screening.Count()
	s.repo.Screening.Clear()

	s.log.Info("All screenings deleted", zap.Int("count", count))
}
