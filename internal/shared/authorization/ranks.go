package authorization

import (
	"fmt"
	"strings"
)

// Rank is the staff rank shared by helpers and web-console admin accounts.
// Ranks form a strict total order; a higher level implies more privilege.
type Rank string

const (
	RankModer      Rank = "Moder"
	RankAdmin      Rank = "Admin"
	RankCurator    Rank = "Curator"
	RankManager    Rank = "Manager"
	RankSuperAdmin Rank = "SuperAdmin"
)

var rankLevels = map[Rank]int{
	RankModer:      1,
	RankAdmin:      2,
	RankCurator:    3,
	RankManager:    4,
	RankSuperAdmin: 5,
}

func (r Rank) String() string {
	return string(r)
}

func (r Rank) IsValid() bool {
	_, ok := rankLevels[r]
	return ok
}

// Level returns the numeric privilege level, 0 for unrecognized ranks.
func (r Rank) Level() int {
	return rankLevels[r]
}

func (r Rank) IsSuperAdmin() bool {
	return r == RankSuperAdmin
}

// AtLeast reports whether r has privilege greater than or equal to other.
func (r Rank) AtLeast(other Rank) bool {
	return r.Level() >= other.Level()
}

// AllRanks returns the full enumeration in ascending privilege order.
func AllRanks() []Rank {
	return []Rank{RankModer, RankAdmin, RankCurator, RankManager, RankSuperAdmin}
}

// ParseRank normalizes a rank label case-insensitively. Unrecognized
// labels are rejected; write boundaries must never accept them.
func ParseRank(s string) (Rank, error) {
	for r := range rankLevels {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unrecognized rank label: %q", s)
}
