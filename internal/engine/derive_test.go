package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/runeforge/codex-api/internal/engine"
	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/testutils/builders"
)

type DeriveTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func (s *DeriveTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *DeriveTestSuite) powerCatalog() []forge.PartCatalogEntry {
	return []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("part-bolt", "Searing Bolt").
			WithEnergyCost(2).
			WithTrainingPointCost(1).
			WithRange("60 ft").
			WithActionType("Action").
			BuildValue(),
		builders.NewPartEntryBuilder("part-empower", "Empower").
			WithEnergyCost(1.2).
			WithTrainingPointCost(2).
			AsPercentage().
			BuildValue(),
		builders.NewPartEntryBuilder("part-linger", "Lingering Effect").
			WithDuration("1 minute").
			BuildValue(),
		builders.NewPartEntryBuilder("part-burst", "Burst").
			WithArea("10 ft radius").
			BuildValue(),
	}
}

func (s *DeriveTestSuite) armamentCatalog() []forge.PartCatalogEntry {
	return []forge.PartCatalogEntry{
		builders.NewPartEntryBuilder("prop-keen", "Keen Edge").
			WithKind(forge.PartKindArmamentProperty).
			WithCurrencyCost(100).
			WithTrainingPointCost(4).
			WithItemPointCost(2).
			BuildValue(),
		builders.NewPartEntryBuilder("prop-balanced", "Balanced").
			WithKind(forge.PartKindArmamentProperty).
			WithCurrencyCost(50).
			WithTrainingPointCost(2).
			WithItemPointCost(1).
			BuildValue(),
	}
}

func (s *DeriveTestSuite) armamentTiers() []forge.RarityTier {
	maxLevel := int32(2)
	maxCurrency := 99.0
	return []forge.RarityTier{
		{Name: "Common", LevelMin: 0, LevelMax: &maxLevel, CurrencyMin: 0, CurrencyMax: &maxCurrency},
		{Name: "Rare", LevelMin: 3, CurrencyMin: 100},
	}
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_CostsAndChips() {
	power := &forge.Power{
		ID:   "power-1",
		Name: "Flame Lash",
		Parts: []forge.PartInstance{
			{PartRef: "part-bolt"},
			{PartRef: "part-empower"},
		},
	}

	output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: s.powerCatalog(),
	})
	s.Require().NoError(err)

	bundle := output.Bundle
	s.Equal("Flame Lash", bundle.Name)
	s.InDelta(2.4, bundle.Energy, 1e-9)
	s.Equal("2.4", bundle.EnergyDisplay)
	s.InDelta(3.0, bundle.TrainingPoints, 1e-9)

	s.Require().Len(bundle.PartChips, 2)
	s.Equal("Searing Bolt", bundle.PartChips[0].Label)
	s.InDelta(1.0, bundle.PartChips[0].TrainingPointContribution, 1e-9)
	s.Equal("Empower", bundle.PartChips[1].Label)
	s.InDelta(2.0, bundle.PartChips[1].TrainingPointContribution, 1e-9)
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_PercentOnlyEnergyDisplay() {
	power := &forge.Power{
		ID:    "power-2",
		Name:  "Empowerment Aura",
		Parts: []forge.PartInstance{{PartRef: "part-empower"}},
	}

	output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: s.powerCatalog(),
	})
	s.Require().NoError(err)

	s.Equal("+20%", output.Bundle.EnergyDisplay)
	s.Zero(output.Bundle.Energy)
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_FieldFallbacks() {
	s.Run("part values fill empty fields", func() {
		power := &forge.Power{
			ID:   "power-3",
			Name: "Cinder Field",
			Parts: []forge.PartInstance{
				{PartRef: "part-bolt"},
				{PartRef: "part-linger"},
				{PartRef: "part-burst"},
			},
		}

		output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
			Power:   power,
			Catalog: s.powerCatalog(),
		})
		s.Require().NoError(err)

		s.Equal("Action", output.Bundle.ActionType)
		s.Equal("60 ft", output.Bundle.Range)
		s.Equal("10 ft radius", output.Bundle.Area)
		s.Equal("1 minute", output.Bundle.Duration)
	})

	s.Run("explicit overrides win over part values", func() {
		power := &forge.Power{
			ID:       "power-4",
			Name:     "Cinder Field",
			Range:    "Self",
			Duration: "Instant",
			Parts: []forge.PartInstance{
				{PartRef: "part-bolt"},
				{PartRef: "part-linger"},
			},
		}

		output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
			Power:   power,
			Catalog: s.powerCatalog(),
		})
		s.Require().NoError(err)

		s.Equal("Self", output.Bundle.Range)
		s.Equal("Instant", output.Bundle.Duration)
	})

	s.Run("nothing resolves to the placeholder", func() {
		power := &forge.Power{ID: "power-5", Name: "Blank"}

		output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
			Power:   power,
			Catalog: s.powerCatalog(),
		})
		s.Require().NoError(err)

		s.Equal("-", output.Bundle.ActionType)
		s.Equal("-", output.Bundle.Range)
		s.Equal("-", output.Bundle.Area)
		s.Equal("-", output.Bundle.Duration)
		s.Equal("-", output.Bundle.DamageText)
	})

	s.Run("reaction flag sets the action type", func() {
		power := &forge.Power{ID: "power-6", Name: "Parry", IsReaction: true}

		output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
			Power:   power,
			Catalog: s.powerCatalog(),
		})
		s.Require().NoError(err)

		s.Equal("Reaction", output.Bundle.ActionType)
	})
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_DurationGating() {
	// A part that declares a duration without being flagged as a duration
	// source never contributes it.
	catalog := s.powerCatalog()
	entry := builders.NewPartEntryBuilder("part-slow", "Slow Burn").BuildValue()
	entry.Duration = "1 hour"
	catalog = append(catalog, entry)

	power := &forge.Power{
		ID:    "power-7",
		Name:  "Slow Burn Strike",
		Parts: []forge.PartInstance{{PartRef: "part-slow"}},
	}

	output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: catalog,
	})
	s.Require().NoError(err)

	s.Equal("-", output.Bundle.Duration)
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_UnresolvedRefTolerated() {
	power := &forge.Power{
		ID:   "power-8",
		Name: "Half Remembered",
		Parts: []forge.PartInstance{
			{PartRef: "part-bolt"},
			{PartRef: "Forgotten Part (Opt1)"},
		},
	}

	output, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: s.powerCatalog(),
	})
	s.Require().NoError(err)

	s.InDelta(2.0, output.Bundle.Energy, 1e-9)
	s.Require().Len(output.Bundle.PartChips, 2)
	s.Equal("Forgotten Part", output.Bundle.PartChips[1].Label)
}

func (s *DeriveTestSuite) TestDerivePowerDisplay_Idempotent() {
	power := &forge.Power{
		ID:   "power-9",
		Name: "Flame Lash",
		Parts: []forge.PartInstance{
			{PartRef: "part-bolt"},
			{PartRef: "part-empower"},
			{PartRef: "Forgotten Part"},
		},
		Damage: &forge.Damage{Dice: []forge.DieSpec{{Amount: 2, Size: 6, Type: "fire"}}},
	}
	catalog := s.powerCatalog()

	first, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: catalog,
	})
	s.Require().NoError(err)

	second, err := s.engine.DerivePowerDisplay(s.ctx, &engine.DerivePowerDisplayInput{
		Power:   power,
		Catalog: catalog,
	})
	s.Require().NoError(err)

	s.Equal(first.Bundle, second.Bundle)
}

func (s *DeriveTestSuite) TestDeriveTechniqueDisplay_WeaponDamageFallback() {
	technique := &forge.Technique{
		ID:    "technique-1",
		Name:  "Crushing Blow",
		Parts: []forge.PartInstance{{PartRef: "part-bolt"}},
		Weapon: &forge.WeaponRef{
			Name:   "Warhammer",
			Damage: &forge.Damage{Dice: []forge.DieSpec{{Amount: 1, Size: 10, Type: "bludgeoning"}}},
		},
	}

	output, err := s.engine.DeriveTechniqueDisplay(s.ctx, &engine.DeriveTechniqueDisplayInput{
		Technique: technique,
		Catalog:   s.powerCatalog(),
	})
	s.Require().NoError(err)

	s.Equal("1d10 bludgeoning", output.Bundle.DamageText)
}

func (s *DeriveTestSuite) TestDeriveTechniqueDisplay_OwnDamageWins() {
	technique := &forge.Technique{
		ID:     "technique-2",
		Name:   "Flaming Strike",
		Damage: &forge.Damage{Dice: []forge.DieSpec{{Amount: 2, Size: 6, Type: "fire"}}},
		Weapon: &forge.WeaponRef{
			Name:   "Warhammer",
			Damage: &forge.Damage{Dice: []forge.DieSpec{{Amount: 1, Size: 10, Type: "bludgeoning"}}},
		},
	}

	output, err := s.engine.DeriveTechniqueDisplay(s.ctx, &engine.DeriveTechniqueDisplayInput{
		Technique: technique,
		Catalog:   s.powerCatalog(),
	})
	s.Require().NoError(err)

	s.Equal("2d6 fire", output.Bundle.DamageText)
}

func (s *DeriveTestSuite) TestDeriveArmamentDisplay_CostsAndRarity() {
	armament := &forge.Armament{
		ID:   "armament-1",
		Name: "Duelist's Saber",
		Type: forge.ArmamentTypeWeapon,
		Properties: []forge.PartInstance{
			{PartRef: "prop-keen"},
			{PartRef: "prop-balanced"},
		},
	}

	output, err := s.engine.DeriveArmamentDisplay(s.ctx, &engine.DeriveArmamentDisplayInput{
		Armament:  armament,
		Catalog:   s.armamentCatalog(),
		TierTable: s.armamentTiers(),
	})
	s.Require().NoError(err)

	bundle := output.Bundle
	s.InDelta(6.0, bundle.TrainingPoints, 1e-9)
	s.Equal(150.0, bundle.CurrencyCost)
	s.Equal("Rare", bundle.RarityTier)
	s.Require().Len(bundle.PartChips, 2)
}

func (s *DeriveTestSuite) TestDeriveArmamentDisplay_EmptyTierTable() {
	armament := &forge.Armament{
		ID:         "armament-2",
		Name:       "Plain Club",
		Type:       forge.ArmamentTypeWeapon,
		Properties: []forge.PartInstance{{PartRef: "prop-balanced"}},
	}

	output, err := s.engine.DeriveArmamentDisplay(s.ctx, &engine.DeriveArmamentDisplayInput{
		Armament: armament,
		Catalog:  s.armamentCatalog(),
	})
	s.Require().NoError(err)

	s.Equal(50.0, output.Bundle.CurrencyCost)
	s.Empty(output.Bundle.RarityTier)
}

func TestDeriveTestSuite(t *testing.T) {
	suite.Run(t, new(DeriveTestSuite))
}
