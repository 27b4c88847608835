package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container. Constructed once in main; tests substitute mocks.
type RepositoryProvider struct {
	UserRepo      UserRepository
	TreasuryRepo  TreasuryRepository
	EventRepo     EventRepository
	VolunteerRepo VolunteerRepository
	DonationRepo  DonationRepository
	BureauRepo    BureauRepository
	CampaignRepo  CampaignRepository
}
