package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"identity-org-backend/internal/config"
	"identity-org-backend/internal/database"
	apperrors "identity-org-backend/internal/errors"
	"identity-org-backend/internal/password"
	"identity-org-backend/internal/phone"
	"identity-org-backend/internal/repository"
	"identity-org-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UserData describes a user registered through the identity service
type UserData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Phone     string `yaml:"phone,omitempty"`
}

// OrganisationData describes an extra organisation owned by an existing user
type OrganisationData struct {
	OwnerEmail  string `yaml:"owner_email"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// MembershipData adds member_email to the organisation owner_email owns under organisation
type MembershipData struct {
	OwnerEmail   string `yaml:"owner_email"`
	Organisation string `yaml:"organisation"`
	MemberEmail  string `yaml:"member_email"`
}

// SeedFile is the layout of scripts/data/seed.yaml
type SeedFile struct {
	Users         []UserData         `yaml:"users"`
	Organisations []OrganisationData `yaml:"organisations"`
	Memberships   []MembershipData   `yaml:"memberships"`
}

// SeedStats counts created and skipped records
type SeedStats struct {
	UsersCreated         int
	UsersSkipped         int
	OrganisationsCreated int
	OrganisationsSkipped int
	MembershipsCreated   int
	MembershipsSkipped   int
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	seed, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	stats, err := newSeeder(db, cfg).Run(context.Background(), seed)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Printf("Users: %d created, %d skipped", stats.UsersCreated, stats.UsersSkipped)
	log.Printf("Organisations: %d created, %d skipped", stats.OrganisationsCreated, stats.OrganisationsSkipped)
	log.Printf("Memberships: %d created, %d skipped", stats.MembershipsCreated, stats.MembershipsSkipped)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &seed, nil
}

// seeder loads records through the services so seeded data obeys the same rules as API traffic
type seeder struct {
	store         repository.CredentialStoreInterface
	identity      *service.IdentityService
	organisations *service.OrganisationService
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	store := repository.NewCredentialStore(db)
	validator := service.NewValidator()
	hasher := password.NewHasher(password.Params{
		Time:    cfg.PasswordHashTime,
		Memory:  cfg.PasswordHashMemory,
		Threads: cfg.PasswordHashThreads,
	})
	return &seeder{
		store:         store,
		identity:      service.NewIdentityService(store, hasher, noTokens{}, phone.NewNormalizer(cfg.DefaultPhoneRegion), validator),
		organisations: service.NewOrganisationService(store, service.NewAccessControlService(store), validator),
	}
}

// noTokens satisfies the identity service; seeding never hands tokens out
type noTokens struct{}

func (noTokens) Issue(string) (string, error) { return "", nil }

// Run creates every record in seed. Records that already exist are skipped, so reruns are safe.
func (s *seeder) Run(ctx context.Context, seed *SeedFile) (*SeedStats, error) {
	stats := &SeedStats{}

	for _, u := range seed.Users {
		req := &service.RegisterRequest{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  u.Password,
		}
		if u.Phone != "" {
			p := u.Phone
			req.Phone = &p
		}
		_, err := s.identity.Register(ctx, req)
		switch {
		case err == nil:
			stats.UsersCreated++
		case apperrors.IsAlreadyExists(err):
			stats.UsersSkipped++
		default:
			return nil, fmt.Errorf("register %s: %w", u.Email, err)
		}
	}

	for _, o := range seed.Organisations {
		owner, err := s.store.FindUserByEmail(ctx, o.OwnerEmail)
		if err != nil {
			return nil, fmt.Errorf("organisation %s: owner %s: %w", o.Name, o.OwnerEmail, err)
		}
		req := &service.CreateOrganisationRequest{Name: o.Name}
		if o.Description != "" {
			d := o.Description
			req.Description = &d
		}
		_, err = s.organisations.CreateOrganisation(ctx, owner.UserID, req)
		switch {
		case err == nil:
			stats.OrganisationsCreated++
		case apperrors.IsAlreadyExists(err):
			stats.OrganisationsSkipped++
		default:
			return nil, fmt.Errorf("create organisation %s: %w", o.Name, err)
		}
	}

	for _, m := range seed.Memberships {
		owner, err := s.store.FindUserByEmail(ctx, m.OwnerEmail)
		if err != nil {
			return nil, fmt.Errorf("membership: owner %s: %w", m.OwnerEmail, err)
		}
		org, err := s.store.FindOrganisationByOwnerAndName(ctx, owner.UserID, m.Organisation)
		if err != nil {
			return nil, fmt.Errorf("membership: organisation %s: %w", m.Organisation, err)
		}
		member, err := s.store.FindUserByEmail(ctx, m.MemberEmail)
		if err != nil {
			return nil, fmt.Errorf("membership: member %s: %w", m.MemberEmail, err)
		}

		err = s.organisations.AddMember(ctx, owner.UserID, org.OrgID, &service.AddMemberRequest{UserID: member.UserID.String()})
		switch {
		case err == nil:
			stats.MembershipsCreated++
		case apperrors.IsAlreadyExists(err):
			stats.MembershipsSkipped++
		default:
			return nil, fmt.Errorf("add %s to %s: %w", m.MemberEmail, m.Organisation, err)
		}
	}

	return stats, nil
}
