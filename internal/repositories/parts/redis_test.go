package parts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
	"github.com/runeforge/codex-api/internal/repositories/parts"
	"github.com/runeforge/codex-api/internal/testutils"
	"github.com/runeforge/codex-api/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    parts.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := parts.NewRedis(&parts.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := parts.NewRedis(&parts.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	entry := builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").
		WithEnergyCost(2).
		WithTrainingPointCost(1).
		WithOption(1, "wider arc", 1, 1).
		Build()

	_, err := s.repo.Put(s.ctx, parts.PutInput{Entry: entry})
	s.Require().NoError(err)

	getOutput, err := s.repo.Get(s.ctx, parts.GetInput{ID: "part-bolt"})
	s.Require().NoError(err)
	s.Equal(entry, getOutput.Entry)
}

func (s *RedisRepositoryTestSuite) TestPut_ReplacesExisting() {
	entry := builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").
		WithEnergyCost(2).
		Build()
	_, err := s.repo.Put(s.ctx, parts.PutInput{Entry: entry})
	s.Require().NoError(err)

	entry.BaseEnergyCost = 3
	_, err = s.repo.Put(s.ctx, parts.PutInput{Entry: entry})
	s.Require().NoError(err)

	getOutput, err := s.repo.Get(s.ctx, parts.GetInput{ID: "part-bolt"})
	s.Require().NoError(err)
	s.Equal(3.0, getOutput.Entry.BaseEnergyCost)
}

func (s *RedisRepositoryTestSuite) TestPut_Validation() {
	testCases := []struct {
		name  string
		entry *forge.PartCatalogEntry
	}{
		{name: "nil entry", entry: nil},
		{name: "missing id", entry: &forge.PartCatalogEntry{Name: "No ID"}},
		{name: "missing name", entry: &forge.PartCatalogEntry{ID: "part-unnamed"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, parts.PutInput{Entry: tc.entry})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGet_Missing() {
	_, err := s.repo.Get(s.ctx, parts.GetInput{ID: "part-nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, parts.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	entry := builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").Build()
	_, err := s.repo.Put(s.ctx, parts.PutInput{Entry: entry})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, parts.DeleteInput{ID: "part-bolt"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, parts.GetInput{ID: "part-bolt"})
	s.True(errors.IsNotFound(err))

	listOutput, err := s.repo.ListSnapshot(s.ctx, parts.ListSnapshotInput{})
	s.Require().NoError(err)
	s.Empty(listOutput.Entries)
}

func (s *RedisRepositoryTestSuite) TestDelete_Missing() {
	_, err := s.repo.Delete(s.ctx, parts.DeleteInput{ID: "part-nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSnapshot() {
	seed := []*forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").Build(),
		builders.NewPartEntryBuilder("part-aura", "Aura").Build(),
		builders.NewPartEntryBuilder("prop-keen", "Keen Edge").
			WithKind(forge.PartKindArmamentProperty).
			Build(),
	}
	for _, entry := range seed {
		_, err := s.repo.Put(s.ctx, parts.PutInput{Entry: entry})
		s.Require().NoError(err)
	}

	s.Run("returns all entries sorted by name", func() {
		listOutput, err := s.repo.ListSnapshot(s.ctx, parts.ListSnapshotInput{})
		s.Require().NoError(err)
		s.Require().Len(listOutput.Entries, 3)
		s.Equal("Aura", listOutput.Entries[0].Name)
		s.Equal("Keen Edge", listOutput.Entries[1].Name)
		s.Equal("Searing Bolt", listOutput.Entries[2].Name)
	})

	s.Run("filters by kind", func() {
		listOutput, err := s.repo.ListSnapshot(s.ctx, parts.ListSnapshotInput{
			Kind: forge.PartKindArmamentProperty,
		})
		s.Require().NoError(err)
		s.Require().Len(listOutput.Entries, 1)
		s.Equal("prop-keen", listOutput.Entries[0].ID)
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
