package repository

import (
	"iter"
	"sync"

	"cinema-screening/internal/data/entity"

	"go.uber.org/zap"
)

type ScreeningRepository interface {
	NextID() int64
	Add(screening *entity.Screening)
	FindByID(id int64) *entity.Screening
	All() iter.Seq[*entity.Screening]
	Count() int
	Clear()
}

type screeningRepository struct {
	mu     sync.RWMutex
	lastID int64
	byID   map[int64]*entity.Screening
	order  []int64
	log    *zap.Logger
}

func NewScreeningRepository(log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		byID: make(map[int64]*entity.Screening),
		log:  log.With(zap.String("repository", "screening")),
	}
}

// NextID never hands out the same id twice until Clear is called.
func (r *screeningRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	return r.lastID
}

func (r *screeningRepository) Add(screening *entity.Screening) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[screening.ID]; !exists {
		r.order = append(r.order, screening.ID)
	}
	r.byID[screening.ID] = screening

	r.log.Debug("Screening stored",
		zap.Int64("screening_id", screening.ID),
		zap.Int("count", len(r.order)),
	)
}

// FindByID returns nil when no screening has the given id.
func (r *screeningRepository) FindByID(id int64) *entity.Screening {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id]
}

// All walks the screenings in insertion order. Each range over the returned
// sequence takes a fresh look at the store.
func (r *screeningRepository) All() iter.Seq[*entity.Screening] {
	return func(yield func(*entity.Screening) bool) {
		r.mu.RLock()
		screenings := make([]*entity.Screening, 0, len(r.order))
		for _, id := range r.order {
			screenings = append(screenings, r.byID[id])
		}
		r.mu.RUnlock()

		for _, screening := range screenings {
			if !yield(screening) {
				return
			}
		}
	}
}

func (r *screeningRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Clear drops every screening and resets the id counter.
func (r *screeningRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.order)
	r.byID = make(map[int64]*entity.Screening)
	r.order = nil
	r.lastID = 0

	r.log.Info("Screenings cleared", zap.Int("removed", removed))
}
