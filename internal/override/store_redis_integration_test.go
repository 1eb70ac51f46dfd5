//go:build integration

package override

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caredocs/pkg/domain"
	"caredocs/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *containers.RedisContainer
	store     *RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.container = containers.NewRedisContainer(s.T())
	s.store = NewRedisStore(s.container.Client)
}

func (s *RedisStoreSuite) TearDownSuite() {
	s.container.Terminate(s.ctx)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.container.FlushAll(s.ctx))
}

func (s *RedisStoreSuite) TestComplianceOverrideRoundTrip() {
	clientID := domain.NewClientID()

	got, err := s.store.ComplianceOverrides(s.ctx, clientID)
	s.Require().NoError(err)
	s.Empty(got)

	ov := ComplianceOverride{
		ClientID:    clientID,
		Type:        "Health Action Plan",
		NotRequired: true,
		Reason:      "hospital managed",
		UpdatedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.UpsertComplianceOverride(s.ctx, ov))

	got, err = s.store.ComplianceOverrides(s.ctx, clientID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(ov.Reason, got["Health Action Plan"].Reason)
	s.True(got["Health Action Plan"].NotRequired)

	// Upsert replaces the record under the same key.
	ov.NotRequired = false
	ov.Reason = ""
	s.Require().NoError(s.store.UpsertComplianceOverride(s.ctx, ov))

	got, err = s.store.ComplianceOverrides(s.ctx, clientID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.False(got["Health Action Plan"].NotRequired)
}

func (s *RedisStoreSuite) TestFolderOverrideRoundTrip() {
	clientID := domain.NewClientID()
	hidden := true

	s.Require().NoError(s.store.UpsertFolderOverride(s.ctx, FolderOverride{
		ClientID:   clientID,
		FolderID:   "care-plans",
		CustomName: "Plans",
		Hidden:     &hidden,
		UpdatedAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}))

	got, err := s.store.FolderOverrides(s.ctx, clientID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Plans", got["care-plans"].CustomName)
	s.Require().NotNil(got["care-plans"].Hidden)
	s.True(*got["care-plans"].Hidden)
}

func (s *RedisStoreSuite) TestClientsAreIsolated() {
	first := domain.NewClientID()
	second := domain.NewClientID()

	s.Require().NoError(s.store.UpsertComplianceOverride(s.ctx, ComplianceOverride{
		ClientID: first, Type: "Health Action Plan", NotRequired: true,
	}))

	got, err := s.store.ComplianceOverrides(s.ctx, second)
	s.Require().NoError(err)
	s.Empty(got)
}
