package usecases

import (
	"time"

	"helperdesk/internal/domain/admin"
)

// AdminDTO is the JSON shape of a console account. The password hash
// never leaves the application layer.
type AdminDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Rank      string    `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

func accountToDTO(a *admin.Account) AdminDTO {
	return AdminDTO{
		ID:        a.ID(),
		Username:  a.Username(),
		Rank:      a.Rank().String(),
		CreatedAt: a.CreatedAt(),
	}
}
