// Package schema validates limit-profile files against the embedded CUE
// schema before their values reach the fitment engine.
package schema

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator checks profile documents against the #Profile definition.
type Validator struct {
	ctx     *cue.Context
	profile cue.Value
}

// NewValidator compiles the embedded profile schema. Failure here means the
// binary shipped with a broken schema, so callers treat it as fatal.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/profile.cue")
	if err != nil {
		return nil, fmt.Errorf("schema: reading embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	compiled := ctx.CompileBytes(content, cue.Filename("profile.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("schema: compiling profile.cue: %w", err)
	}

	def := compiled.LookupPath(cue.ParsePath("#Profile"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema: profile.cue has no #Profile definition")
	}

	return &Validator{ctx: ctx, profile: def}, nil
}

// ValidateProfile checks raw profile YAML against the schema. A nil return
// means the document names a profile, carries all four limits, and every
// limit sits inside the schema's bounds.
func (v *Validator) ValidateProfile(data []byte) error {
	var doc map[string]any
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("profile is not valid YAML: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("profile document is empty")
	}

	value := v.ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encoding profile document: %w", err)
	}

	unified := v.profile.Unify(value)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("profile does not match schema: %w", err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("profile does not match schema: %w", err)
	}
	return nil
}
