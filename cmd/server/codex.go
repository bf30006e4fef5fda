package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/orchestrators/codex"
	"github.com/runeforge/codex-api/internal/repositories/composition"
	"github.com/runeforge/codex-api/internal/repositories/parts"
)

var codexCmd = &cobra.Command{
	Use:   "codex",
	Short: "Operate on the codex directly",
	Long:  `Seed, derive, and inspect codex content against the configured Redis endpoint.`,
}

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load catalog parts and compositions from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

var deriveCmd = &cobra.Command{
	Use:   "derive <power|technique|armament> <id>",
	Short: "Derive and print the display bundle for one composition",
	Args:  cobra.ExactArgs(2),
	RunE:  runDerive,
}

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List browsable catalog parts with display costs",
	RunE:  runParts,
}

var rollCmd = &cobra.Command{
	Use:   "roll <power|technique|armament> <id>",
	Short: "Roll a damage preview for one composition",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoll,
}

var (
	partsKind          string
	partsIncludeHidden bool
)

func init() {
	partsCmd.Flags().StringVar(&partsKind, "kind", "", "filter to one part kind (power, technique, armament-property)")
	partsCmd.Flags().BoolVar(&partsIncludeHidden, "include-mechanic-only", false, "include parts hidden from normal browsing")

	codexCmd.AddCommand(seedCmd)
	codexCmd.AddCommand(deriveCmd)
	codexCmd.AddCommand(partsCmd)
	codexCmd.AddCommand(rollCmd)
}

// seedFile is the JSON shape accepted by the seed command.
type seedFile struct {
	Parts      []forge.PartCatalogEntry `json:"parts,omitempty"`
	Powers     []forge.Power            `json:"powers,omitempty"`
	Techniques []forge.Technique        `json:"techniques,omitempty"`
	Armaments  []forge.Armament         `json:"armaments,omitempty"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 // Path comes from operator args
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	partRepo, compositionRepo, err := buildRepos()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for i := range seed.Parts {
		if _, err := partRepo.Put(ctx, parts.PutInput{Entry: &seed.Parts[i]}); err != nil {
			return fmt.Errorf("failed to store part %s: %w", seed.Parts[i].ID, err)
		}
	}
	for i := range seed.Powers {
		if _, err := compositionRepo.PutPower(ctx, composition.PutPowerInput{Power: &seed.Powers[i]}); err != nil {
			return fmt.Errorf("failed to store power %s: %w", seed.Powers[i].ID, err)
		}
	}
	for i := range seed.Techniques {
		input := composition.PutTechniqueInput{Technique: &seed.Techniques[i]}
		if _, err := compositionRepo.PutTechnique(ctx, input); err != nil {
			return fmt.Errorf("failed to store technique %s: %w", seed.Techniques[i].ID, err)
		}
	}
	for i := range seed.Armaments {
		input := composition.PutArmamentInput{Armament: &seed.Armaments[i]}
		if _, err := compositionRepo.PutArmament(ctx, input); err != nil {
			return fmt.Errorf("failed to store armament %s: %w", seed.Armaments[i].ID, err)
		}
	}

	fmt.Printf("Seeded %d parts, %d powers, %d techniques, %d armaments\n",
		len(seed.Parts), len(seed.Powers), len(seed.Techniques), len(seed.Armaments))
	return nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	service, err := buildService()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	kind, id := args[0], args[1]

	switch forge.CompositionKind(kind) {
	case forge.CompositionKindPower:
		output, err := service.GetPowerDisplay(ctx, &codex.GetPowerDisplayInput{PowerID: id})
		if err != nil {
			return err
		}
		return printJSON(output.Bundle)
	case forge.CompositionKindTechnique:
		output, err := service.GetTechniqueDisplay(ctx, &codex.GetTechniqueDisplayInput{TechniqueID: id})
		if err != nil {
			return err
		}
		return printJSON(output.Bundle)
	case forge.CompositionKindArmament:
		output, err := service.GetArmamentDisplay(ctx, &codex.GetArmamentDisplayInput{ArmamentID: id})
		if err != nil {
			return err
		}
		return printJSON(output.Bundle)
	default:
		return fmt.Errorf("unknown composition kind: %s", kind)
	}
}

func runParts(cmd *cobra.Command, args []string) error {
	service, err := buildService()
	if err != nil {
		return err
	}

	output, err := service.ListCatalogParts(cmd.Context(), &codex.ListCatalogPartsInput{
		Kind:                forge.PartKind(partsKind),
		IncludeMechanicOnly: partsIncludeHidden,
	})
	if err != nil {
		return err
	}

	for _, part := range output.Parts {
		fmt.Printf("%-24s %-20s %-8s %s\n", part.Entry.ID, part.Entry.Name, part.EnergyDisplay, part.Entry.Kind)
	}
	return nil
}

func runRoll(cmd *cobra.Command, args []string) error {
	service, err := buildService()
	if err != nil {
		return err
	}

	output, err := service.PreviewDamageRoll(cmd.Context(), &codex.PreviewDamageRollInput{
		Kind: forge.CompositionKind(args[0]),
		ID:   args[1],
	})
	if err != nil {
		return err
	}

	return printJSON(output)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
