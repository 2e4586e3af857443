package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/observability"
	"github.com/jonathan/csm-portfolio/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a metrics document",
	Long:  "Checks a metrics document against the JSON schema and the store integrity rules (required fields, known categories, unique ids).",
	RunE:  runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Also check the document against this JSON Schema file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateSchemaPath != "" {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := schemas.ValidateJSON(validateSchemaPath, cfg.MetricsPath); err != nil {
			return fmt.Errorf("schema %s: %w", validateSchemaPath, err)
		}
	}

	_, store, err := loadStore(cmd)
	if err != nil {
		var integrityErr *metrics.IntegrityError
		if errors.As(err, &integrityErr) {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintIntegrityError(integrityErr)
			return fmt.Errorf("validation failed with %d violations", len(integrityErr.Violations))
		}
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "OK: %d metrics, %d trending up\n", store.Len(), len(store.Trending()))
	return err
}
