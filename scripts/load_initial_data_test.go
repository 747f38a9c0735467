package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"identity-org-backend/internal/config"
	"identity-org-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFileParses(t *testing.T) {
	seed, err := loadSeedFile(filepath.Join("data", "seed.yaml"))

	require.NoError(t, err)
	assert.NotEmpty(t, seed.Users)
	assert.NotEmpty(t, seed.Organisations)
	assert.NotEmpty(t, seed.Memberships)
}

func TestSeedFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: [unclosed"), 0o600))

	_, err := loadSeedFile(path)

	assert.Error(t, err)
}

func TestSeederRunIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	cfg := &config.Config{PasswordHashTime: 1, PasswordHashMemory: 1024, PasswordHashThreads: 1, DefaultPhoneRegion: "GB"}
	seed := &SeedFile{
		Users: []UserData{
			{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: "pw-john", Phone: "07400 123456"},
			{FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Password: "pw-jane"},
		},
		Organisations: []OrganisationData{{OwnerEmail: "john@example.com", Name: "Acme"}},
		Memberships:   []MembershipData{{OwnerEmail: "john@example.com", Organisation: "Acme", MemberEmail: "jane@example.com"}},
	}
	s := newSeeder(db, cfg)

	first, err := s.Run(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, &SeedStats{UsersCreated: 2, OrganisationsCreated: 1, MembershipsCreated: 1}, first)

	second, err := s.Run(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, &SeedStats{UsersSkipped: 2, OrganisationsSkipped: 1, MembershipsSkipped: 1}, second)

	jane, err := s.store.FindUserByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	orgs, err := s.store.OrganisationsFor(context.Background(), jane.UserID)
	require.NoError(t, err)
	assert.Len(t, orgs, 2)
}

func TestSeederRejectsUnknownOwner(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	s := newSeeder(db, &config.Config{PasswordHashTime: 1, PasswordHashMemory: 1024, PasswordHashThreads: 1})

	_, err := s.Run(context.Background(), &SeedFile{
		Organisations: []OrganisationData{{OwnerEmail: "ghost@example.com", Name: "Acme"}},
	})

	assert.Error(t, err)
}
