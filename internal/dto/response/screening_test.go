package response

import (
	"encoding/json"
	"testing"
	"time"

	"cinema-screening/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreeningToResponse(t *testing.T) {
	screening := &entity.Screening{
		ID:          4,
		Title:       "Matrix",
		Date:        time.Date(2021, 3, 25, 19, 30, 0, 0, time.UTC),
		TotalSpaces: 10,
		FreeSpaces:  7,
	}

	got := ScreeningToResponse(screening)

	assert.Equal(t, ScreeningResponse{
		ID:          4,
		Title:       "Matrix",
		Date:        "2021-03-25T19:30:00",
		TotalSpaces: 10,
		FreeSpaces:  7,
	}, got)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"title":"Matrix","date":"2021-03-25T19:30:00","totalSpaces":10,"freeSpaces":7}`, string(raw))
}
