package repository

import (
	"slices"
	"sync"
	"testing"

	"cinema-screening/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScreening(r ScreeningRepository, title string, total int) *entity.Screening {
	s := &entity.Screening{ID: r.NextID(), Title: title, TotalSpaces: total, FreeSpaces: total}
	r.Add(s)
	return s
}

func ids(r ScreeningRepository) []int64 {
	var out []int64
	for s := range r.All() {
		out = append(out, s.ID)
	}
	return out
}

func TestScreeningRepository_NextIDIsMonotonic(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())

	assert.Equal(t, int64(1), r.NextID())
	assert.Equal(t, int64(2), r.NextID())
	assert.Equal(t, int64(3), r.NextID())
}

func TestScreeningRepository_AllKeepsInsertionOrder(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())
	newScreening(r, "Matrix", 10)
	newScreening(r, "Alien", 5)
	newScreening(r, "Heat", 2)

	assert.Equal(t, []int64{1, 2, 3}, ids(r))
	// sequence can be ranged over again
	assert.Equal(t, []int64{1, 2, 3}, ids(r))
	assert.Equal(t, 3, r.Count())
}

func TestScreeningRepository_AllStopsEarly(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())
	newScreening(r, "Matrix", 10)
	newScreening(r, "Alien", 5)

	var seen []string
	for s := range r.All() {
		seen = append(seen, s.Title)
		break
	}
	assert.Equal(t, []string{"Matrix"}, seen)
}

func TestScreeningRepository_FindByID(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())
	created := newScreening(r, "Matrix", 10)

	found := r.FindByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Matrix", found.Title)

	assert.Nil(t, r.FindByID(999))
}

func TestScreeningRepository_ClearResetsCounter(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())
	newScreening(r, "Matrix", 10)
	newScreening(r, "Alien", 5)

	r.Clear()
	assert.Empty(t, ids(r))
	assert.Zero(t, r.Count())

	r.Clear()
	assert.Empty(t, ids(r))

	s := newScreening(r, "Heat", 1)
	assert.Equal(t, int64(1), s.ID)
}

func TestScreeningRepository_ConcurrentNextID(t *testing.T) {
	r := NewScreeningRepository(zap.NewNop())

	const n = 50
	got := make([]int64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = r.NextID()
		}()
	}
	wg.Wait()

	slices.Sort(got)
	for i, id := range got {
		assert.Equal(t, int64(i+1), id)
	}
}
