// Package errors provides structured error handling for the codex-api
// project: errors with codes, messages, and metadata, context preservation
// through wrapping, validation helpers, and type-safe checking.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("power not found")
//	err := errors.InvalidArgumentf("invalid option level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("power not found").
//	    WithMeta("power_id", powerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get power")
//	}
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.PartRepo == nil {
//	    vb.RequiredField("PartRepo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// The derivation engine itself never fails structurally; its only error
// returns guard nil inputs with InvalidArgument.
package errors
