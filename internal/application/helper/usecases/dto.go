package usecases

import (
	"time"

	"helperdesk/internal/domain/helper"
)

// HelperDTO is the JSON shape of a roster member.
type HelperDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Rank         string    `json:"rank"`
	WarningCount uint      `json:"warning_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func helperToDTO(h *helper.Helper) HelperDTO {
	return HelperDTO{
		ID:           h.ID(),
		Name:         h.Name(),
		Rank:         h.Rank().String(),
		WarningCount: h.WarningCount(),
		CreatedAt:    h.CreatedAt(),
		UpdatedAt:    h.UpdatedAt(),
	}
}
