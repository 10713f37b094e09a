package request

type CreateScreeningRequest struct {
	Title      string `json:"title" validate:"required,notblank"`
	Date       string `json:"date" validate:"required,localdatetime"`
	TotalSpace *int   `json:"totalSpace" validate:"required,min=0"`
}

type ReservationRequest struct {
	ReservedSpaces *int `json:"reservedSpaces" validate:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" validate:"required,localdatetime"`
}
