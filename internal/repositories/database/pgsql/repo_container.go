package pgsql

import (
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider constructs all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      NewUserRepository(pool),
		TreasuryRepo:  NewTreasuryRepository(pool),
		EventRepo:     NewEventRepository(pool),
		VolunteerRepo: NewVolunteerRepository(pool),
		DonationRepo:  NewDonationRepository(pool),
		BureauRepo:    NewBureauRepository(pool),
		CampaignRepo:  NewCampaignRepository(pool),
	}
}
