package response

import (
	"cinema-screening/internal/data/entity"
	"cinema-screening/pkg/utils"
)

type ScreeningResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	TotalSpaces int    `json:"totalSpaces"`
	FreeSpaces  int    `json:"freeSpaces"`
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:          screening.ID,
		Title:       screening.Title,
		Date:        utils.FormatDateTime(screening.Date),
		TotalSpaces: screening.TotalSpaces,
		FreeSpaces:  screening.FreeSpaces,
	}
}
