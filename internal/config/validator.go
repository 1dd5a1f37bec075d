package config

import (
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema and
// the cross-field invariants the schema cannot express.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration.
// Structural errors come from the CUE schema; cross-field invariants
// (identity fields, type-specific fields, extension coverage) are
// checked afterwards.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	errs = append(errs, v.validateSchema(cfg)...)
	errs = append(errs, validateCollections(cfg)...)
	errs = append(errs, validateExtensionCoverage(cfg)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateSchema unifies the config with the embedded CUE schema.
func (v *Validator) validateSchema(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	val := v.ctx.Encode(cfg)
	if val.Err() != nil {
		return ValidationErrors{{Field: "config", Message: val.Err().Error()}}
	}

	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			field := strings.Join(e.Path(), ".")
			if field == "" {
				field = "config"
			}
			errs = append(errs, ValidationError{
				Field:   field,
				Message: e.Error(),
			})
		}
	}

	return errs
}

// sortedCollectionCodes returns the collection codes in stable order so
// error lists do not shuffle between runs.
func sortedCollectionCodes(cfg *Config) []string {
	codes := make([]string, 0, len(cfg.Collections))
	for code := range cfg.Collections {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// validateCollections checks per-collection required_fields invariants.
func validateCollections(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	for _, code := range sortedCollectionCodes(cfg) {
		cc := cfg.Collections[code]
		fields := make(map[string]bool, len(cc.RequiredFields))
		for _, f := range cc.RequiredFields {
			fields[f] = true
		}

		for _, id := range IdentityFields {
			if !fields[id] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("collections.%s.required_fields", code),
					Message: fmt.Sprintf("missing identity field %q", id),
				})
			}
		}

		switch cc.Type {
		case TypeEEG:
			if !fields["eeg_file"] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("collections.%s.required_fields", code),
					Message: `eeg collections must require "eeg_file"`,
				})
			}
		case TypeMRI:
			if !fields["mri_file"] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("collections.%s.required_fields", code),
					Message: `mri collections must require "mri_file"`,
				})
			}
		}
	}

	return errs
}

// validateExtensionCoverage checks that allowed_extensions covers every
// collection type in use.
func validateExtensionCoverage(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	covered := make(map[string]bool, len(cfg.Validation.AllowedExtensions))
	for dataType, exts := range cfg.Validation.AllowedExtensions {
		covered[dataType] = len(exts) > 0
	}

	seen := map[string]bool{}
	for _, code := range sortedCollectionCodes(cfg) {
		cc := cfg.Collections[code]
		if seen[cc.Type] {
			continue
		}
		seen[cc.Type] = true

		if !covered[cc.Type] {
			errs = append(errs, ValidationError{
				Field:   "validation.allowed_extensions",
				Message: fmt.Sprintf("no extensions configured for type %q (used by collection %s)", cc.Type, code),
			})
		}
	}

	return errs
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return v.Validate(cfg)
}
