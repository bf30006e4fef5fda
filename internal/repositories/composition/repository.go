// Package composition provides the interface for composition document
// persistence: the powers, techniques, and armaments players author.
package composition

//go:generate mockgen -destination=mock/mock_repository.go -package=compositionmock github.com/runeforge/codex-api/internal/repositories/composition Repository

import (
	"context"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// Repository defines the interface for composition persistence. Documents
// are stored as authored; all derivation happens in the engine at read time.
type Repository interface {
	// Powers
	GetPower(ctx context.Context, input GetPowerInput) (*GetPowerOutput, error)
	PutPower(ctx context.Context, input PutPowerInput) (*PutPowerOutput, error)
	DeletePower(ctx context.Context, input DeletePowerInput) (*DeletePowerOutput, error)
	ListPowers(ctx context.Context, input ListPowersInput) (*ListPowersOutput, error)

	// Techniques
	GetTechnique(ctx context.Context, input GetTechniqueInput) (*GetTechniqueOutput, error)
	PutTechnique(ctx context.Context, input PutTechniqueInput) (*PutTechniqueOutput, error)
	DeleteTechnique(ctx context.Context, input DeleteTechniqueInput) (*DeleteTechniqueOutput, error)
	ListTechniques(ctx context.Context, input ListTechniquesInput) (*ListTechniquesOutput, error)

	// Armaments
	GetArmament(ctx context.Context, input GetArmamentInput) (*GetArmamentOutput, error)
	PutArmament(ctx context.Context, input PutArmamentInput) (*PutArmamentOutput, error)
	DeleteArmament(ctx context.Context, input DeleteArmamentInput) (*DeleteArmamentOutput, error)
	ListArmaments(ctx context.Context, input ListArmamentsInput) (*ListArmamentsOutput, error)
}

// GetPowerInput defines the input for getting a power
type GetPowerInput struct {
	ID string
}

// GetPowerOutput defines the output for getting a power
type GetPowerOutput struct {
	Power *forge.Power
}

// PutPowerInput defines the input for storing a power
type PutPowerInput struct {
	Power *forge.Power
}

// PutPowerOutput defines the output for storing a power
type PutPowerOutput struct {
	Power *forge.Power
}

// DeletePowerInput defines the input for deleting a power
type DeletePowerInput struct {
	ID string
}

// DeletePowerOutput defines the output for deleting a power
type DeletePowerOutput struct{}

// ListPowersInput defines the input for listing powers
type ListPowersInput struct{}

// ListPowersOutput defines the output for listing powers
type ListPowersOutput struct {
	Powers []*forge.Power
}

// GetTechniqueInput defines the input for getting a technique
type GetTechniqueInput struct {
	ID string
}

// GetTechniqueOutput defines the output for getting a technique
type GetTechniqueOutput struct {
	Technique *forge.Technique
}

// PutTechniqueInput defines the input for storing a technique
type PutTechniqueInput struct {
	Technique *forge.Technique
}

// PutTechniqueOutput defines the output for storing a technique
type PutTechniqueOutput struct {
	Technique *forge.Technique
}

// DeleteTechniqueInput defines the input for deleting a technique
type DeleteTechniqueInput struct {
	ID string
}

// DeleteTechniqueOutput defines the output for deleting a technique
type DeleteTechniqueOutput struct{}

// ListTechniquesInput defines the input for listing techniques
type ListTechniquesInput struct{}

// ListTechniquesOutput defines the output for listing techniques
type ListTechniquesOutput struct {
	Techniques []*forge.Technique
}

// GetArmamentInput defines the input for getting an armament
type GetArmamentInput struct {
	ID string
}

// GetArmamentOutput defines the output for getting an armament
type GetArmamentOutput struct {
	Armament *forge.Armament
}

// PutArmamentInput defines the input for storing an armament
type PutArmamentInput struct {
	Armament *forge.Armament
}

// PutArmamentOutput defines the output for storing an armament
type PutArmamentOutput struct {
	Armament *forge.Armament
}

// DeleteArmamentInput defines the input for deleting an armament
type DeleteArmamentInput struct {
	ID string
}

// DeleteArmamentOutput defines the output for deleting an armament
type DeleteArmamentOutput struct{}

// ListArmamentsInput defines the input for listing armaments
type ListArmamentsInput struct{}

// ListArmamentsOutput defines the output for listing armaments
type ListArmamentsOutput struct {
	Armaments []*forge.Armament
}
