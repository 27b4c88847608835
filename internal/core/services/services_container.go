package services

import (
	"github.com/assogestion/assogestion/internal/core/ports"
	portsrepo "github.com/assogestion/assogestion/internal/core/ports/repositories"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and
// collaborators. Called once in main; handlers only see the container.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, mailer ports.Mailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(repos.UserRepo, cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Treasury:    NewTreasuryService(repos.TreasuryRepo, repos.UserRepo),
		Event:       NewEventService(repos.EventRepo, repos.UserRepo),
		Volunteer:   NewVolunteerService(repos.VolunteerRepo, repos.EventRepo, repos.UserRepo),
		Donation:    NewDonationService(repos.DonationRepo, repos.CampaignRepo, repos.UserRepo),
		Bureau:      NewBureauService(repos.BureauRepo, repos.UserRepo),
		Campaign:    NewCampaignService(repos.CampaignRepo, repos.UserRepo, mailer),
	}
}
