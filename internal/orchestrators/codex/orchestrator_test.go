package codex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/runeforge/codex-api/internal/engine"
	enginemock "github.com/runeforge/codex-api/internal/engine/mock"
	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
	"github.com/runeforge/codex-api/internal/orchestrators/codex"
	"github.com/runeforge/codex-api/internal/pkg/idgen"
	"github.com/runeforge/codex-api/internal/repositories/composition"
	compositionmock "github.com/runeforge/codex-api/internal/repositories/composition/mock"
	"github.com/runeforge/codex-api/internal/repositories/parts"
	partsmock "github.com/runeforge/codex-api/internal/repositories/parts/mock"
	"github.com/runeforge/codex-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPartRepo        *partsmock.MockRepository
	mockCompositionRepo *compositionmock.MockRepository
	service             codex.Service
	ctx                 context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPartRepo = partsmock.NewMockRepository(s.ctrl)
	s.mockCompositionRepo = compositionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	service, err := codex.NewOrchestrator(&codex.Config{
		PartRepo:        s.mockPartRepo,
		CompositionRepo: s.mockCompositionRepo,
		Engine:          eng,
		IDGenerator:     idgen.NewSequential("roll"),
		RarityTiers:     s.tiers(),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) tiers() []forge.RarityTier {
	maxCurrency := 99.0
	return []forge.RarityTier{
		{Name: "Common", LevelMin: 0, CurrencyMin: 0, CurrencyMax: &maxCurrency},
		{Name: "Rare", LevelMin: 0, CurrencyMin: 100},
	}
}

func (s *OrchestratorTestSuite) powerCatalog() []forge.PartCatalogEntry {
	return []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").
			WithEnergyCost(2).
			WithTrainingPointCost(1).
			BuildValue(),
		builders.NewPartEntryBuilder("part-empower", "Empower").
			WithEnergyCost(1.2).
			AsPercentage().
			BuildValue(),
	}
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := codex.NewOrchestrator(&codex.Config{})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestGetPowerDisplay() {
	power := &forge.Power{
		ID:   "power-1",
		Name: "Flame Lash",
		Parts: []forge.PartInstance{
			{PartRef: "part-bolt"},
			{PartRef: "part-empower"},
		},
	}

	s.mockCompositionRepo.EXPECT().
		GetPower(s.ctx, composition.GetPowerInput{ID: "power-1"}).
		Return(&composition.GetPowerOutput{Power: power}, nil)

	s.mockPartRepo.EXPECT().
		ListSnapshot(s.ctx, parts.ListSnapshotInput{Kind: forge.PartKindPower}).
		Return(&parts.ListSnapshotOutput{Entries: s.powerCatalog()}, nil)

	output, err := s.service.GetPowerDisplay(s.ctx, &codex.GetPowerDisplayInput{PowerID: "power-1"})
	s.Require().NoError(err)

	s.Equal("Flame Lash", output.Bundle.Name)
	s.InDelta(2.4, output.Bundle.Energy, 1e-9)
	s.Equal("2.4", output.Bundle.EnergyDisplay)
}

func (s *OrchestratorTestSuite) TestGetPowerDisplay_MissingID() {
	_, err := s.service.GetPowerDisplay(s.ctx, &codex.GetPowerDisplayInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetPowerDisplay_NotFound() {
	s.mockCompositionRepo.EXPECT().
		GetPower(s.ctx, composition.GetPowerInput{ID: "power-nope"}).
		Return(nil, errors.NotFound("power power-nope not found"))

	_, err := s.service.GetPowerDisplay(s.ctx, &codex.GetPowerDisplayInput{PowerID: "power-nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetTechniqueDisplay() {
	technique := &forge.Technique{
		ID:    "technique-1",
		Name:  "Crushing Blow",
		Parts: []forge.PartInstance{{PartRef: "part-bolt"}},
		Weapon: &forge.WeaponRef{
			Name:   "Warhammer",
			Damage: &forge.Damage{Dice: []forge.DieSpec{{Amount: 1, Size: 10, Type: "bludgeoning"}}},
		},
	}

	s.mockCompositionRepo.EXPECT().
		GetTechnique(s.ctx, composition.GetTechniqueInput{ID: "technique-1"}).
		Return(&composition.GetTechniqueOutput{Technique: technique}, nil)

	s.mockPartRepo.EXPECT().
		ListSnapshot(s.ctx, parts.ListSnapshotInput{Kind: forge.PartKindTechnique}).
		Return(&parts.ListSnapshotOutput{Entries: s.powerCatalog()}, nil)

	output, err := s.service.GetTechniqueDisplay(s.ctx, &codex.GetTechniqueDisplayInput{TechniqueID: "technique-1"})
	s.Require().NoError(err)

	s.Equal("1d10 bludgeoning", output.Bundle.DamageText)
}

func (s *OrchestratorTestSuite) TestGetArmamentDisplay() {
	armament := &forge.Armament{
		ID:         "armament-1",
		Name:       "Duelist's Saber",
		Type:       forge.ArmamentTypeWeapon,
		Properties: []forge.PartInstance{{PartRef: "prop-keen"}},
	}
	catalog := []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("prop-keen", "Keen Edge").
			WithKind(forge.PartKindArmamentProperty).
			WithCurrencyCost(150).
			WithItemPointCost(2).
			BuildValue(),
	}

	s.mockCompositionRepo.EXPECT().
		GetArmament(s.ctx, composition.GetArmamentInput{ID: "armament-1"}).
		Return(&composition.GetArmamentOutput{Armament: armament}, nil)

	s.mockPartRepo.EXPECT().
		ListSnapshot(s.ctx, parts.ListSnapshotInput{Kind: forge.PartKindArmamentProperty}).
		Return(&parts.ListSnapshotOutput{Entries: catalog}, nil)

	output, err := s.service.GetArmamentDisplay(s.ctx, &codex.GetArmamentDisplayInput{ArmamentID: "armament-1"})
	s.Require().NoError(err)

	s.Equal(150.0, output.Bundle.CurrencyCost)
	s.Equal("Rare", output.Bundle.RarityTier)
}

func (s *OrchestratorTestSuite) TestListPowerLibrary() {
	powers := []*forge.Power{
		{ID: "power-1", Name: "Flame Lash", Parts: []forge.PartInstance{{PartRef: "part-bolt"}}},
		{ID: "power-2", Name: "Ember Veil"},
	}

	s.mockCompositionRepo.EXPECT().
		ListPowers(s.ctx, composition.ListPowersInput{}).
		Return(&composition.ListPowersOutput{Powers: powers}, nil)

	s.mockPartRepo.EXPECT().
		ListSnapshot(s.ctx, parts.ListSnapshotInput{Kind: forge.PartKindPower}).
		Return(&parts.ListSnapshotOutput{Entries: s.powerCatalog()}, nil)

	output, err := s.service.ListPowerLibrary(s.ctx, &codex.ListPowerLibraryInput{})
	s.Require().NoError(err)

	s.Require().Len(output.Bundles, 2)
	s.Equal("Flame Lash", output.Bundles[0].Name)
	s.InDelta(2.0, output.Bundles[0].Energy, 1e-9)
	s.Equal("Ember Veil", output.Bundles[1].Name)
}

func (s *OrchestratorTestSuite) TestListCatalogParts_FiltersMechanicOnly() {
	catalog := []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").
			WithEnergyCost(2).
			BuildValue(),
		builders.NewPartEntryBuilder("part-hidden", "Hidden Mechanic").
			AsMechanicOnly().
			BuildValue(),
	}

	s.mockPartRepo.EXPECT().
		ListSnapshot(s.ctx, parts.ListSnapshotInput{Kind: forge.PartKindPower}).
		Return(&parts.ListSnapshotOutput{Entries: catalog}, nil).
		Times(2)

	output, err := s.service.ListCatalogParts(s.ctx, &codex.ListCatalogPartsInput{Kind: forge.PartKindPower})
	s.Require().NoError(err)
	s.Require().Len(output.Parts, 1)
	s.Equal("part-bolt", output.Parts[0].Entry.ID)
	s.Equal("2", output.Parts[0].EnergyDisplay)

	output, err = s.service.ListCatalogParts(s.ctx, &codex.ListCatalogPartsInput{
		Kind:                forge.PartKindPower,
		IncludeMechanicOnly: true,
	})
	s.Require().NoError(err)
	s.Len(output.Parts, 2)
}

func (s *OrchestratorTestSuite) TestPreviewDamageRoll_StructuredDice() {
	power := &forge.Power{
		ID:   "power-1",
		Name: "Flame Lash",
		Damage: &forge.Damage{
			Dice: []forge.DieSpec{
				{Amount: 2, Size: 6, Type: "fire"},
				{Amount: 3, Type: "force"},
			},
		},
	}

	s.mockCompositionRepo.EXPECT().
		GetPower(s.ctx, composition.GetPowerInput{ID: "power-1"}).
		Return(&composition.GetPowerOutput{Power: power}, nil)

	output, err := s.service.PreviewDamageRoll(s.ctx, &codex.PreviewDamageRollInput{
		Kind: forge.CompositionKindPower,
		ID:   "power-1",
	})
	s.Require().NoError(err)

	s.Equal("roll_1", output.RollID)
	s.Equal("2d6 fire, 3 force", output.DamageText)
	s.Require().Len(output.Rolls, 2)

	roll := output.Rolls[0]
	s.Equal("2d6", roll.Notation)
	s.Equal("fire", roll.DamageType)
	s.Len(roll.Dice, 2)
	s.GreaterOrEqual(roll.Total, int32(2))
	s.LessOrEqual(roll.Total, int32(12))

	flat := output.Rolls[1]
	s.Equal("3", flat.Notation)
	s.Equal(int32(3), flat.Total)
	s.Empty(flat.Dice)

	s.Equal(roll.Total+flat.Total, output.Total)
}

func (s *OrchestratorTestSuite) TestPreviewDamageRoll_ParsesTextNotation() {
	technique := &forge.Technique{
		ID:     "technique-1",
		Name:   "Flaming Strike",
		Damage: &forge.Damage{Text: "2d6 fire plus 1d4 cold"},
	}

	s.mockCompositionRepo.EXPECT().
		GetTechnique(s.ctx, composition.GetTechniqueInput{ID: "technique-1"}).
		Return(&composition.GetTechniqueOutput{Technique: technique}, nil)

	output, err := s.service.PreviewDamageRoll(s.ctx, &codex.PreviewDamageRollInput{
		Kind: forge.CompositionKindTechnique,
		ID:   "technique-1",
	})
	s.Require().NoError(err)

	s.Equal("2d6 fire plus 1d4 cold", output.DamageText)
	s.Require().Len(output.Rolls, 2)
	s.Equal("2d6", output.Rolls[0].Notation)
	s.Equal("fire", output.Rolls[0].DamageType)
	s.Equal("1d4", output.Rolls[1].Notation)
	s.Equal("cold", output.Rolls[1].DamageType)
}

func (s *OrchestratorTestSuite) TestPreviewDamageRoll_NoDamage() {
	s.mockCompositionRepo.EXPECT().
		GetPower(s.ctx, composition.GetPowerInput{ID: "power-1"}).
		Return(&composition.GetPowerOutput{Power: &forge.Power{ID: "power-1", Name: "Wardless"}}, nil)

	_, err := s.service.PreviewDamageRoll(s.ctx, &codex.PreviewDamageRollInput{
		Kind: forge.CompositionKindPower,
		ID:   "power-1",
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestPreviewDamageRoll_UnknownKind() {
	_, err := s.service.PreviewDamageRoll(s.ctx, &codex.PreviewDamageRollInput{
		Kind: forge.CompositionKind("spell"),
		ID:   "spell-1",
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// The engine mock lets orchestration behavior assert on delegation without
// real derivation math.
func TestListCatalogParts_DelegatesFormatting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPartRepo := partsmock.NewMockRepository(ctrl)
	mockCompositionRepo := compositionmock.NewMockRepository(ctrl)
	mockEngine := enginemock.NewMockEngine(ctrl)

	maxCurrency := 99.0
	service, err := codex.NewOrchestrator(&codex.Config{
		PartRepo:        mockPartRepo,
		CompositionRepo: mockCompositionRepo,
		Engine:          mockEngine,
		IDGenerator:     idgen.NewSequential("roll"),
		RarityTiers: []forge.RarityTier{
			{Name: "Common", CurrencyMin: 0, CurrencyMax: &maxCurrency},
		},
	})
	require.NoError(t, err)

	ctx := context.Background()
	catalog := []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("part-empower", "Empower").
			WithEnergyCost(1.25).
			AsPercentage().
			BuildValue(),
	}

	mockPartRepo.EXPECT().
		ListSnapshot(ctx, parts.ListSnapshotInput{}).
		Return(&parts.ListSnapshotOutput{Entries: catalog}, nil)

	mockEngine.EXPECT().
		FormatEnergyCost(gomock.Any()).
		Return("+25%")

	output, err := service.ListCatalogParts(ctx, &codex.ListCatalogPartsInput{})
	require.NoError(t, err)
	require.Len(t, output.Parts, 1)
	require.Equal(t, "+25%", output.Parts[0].EnergyDisplay)
}
