package pipeline

import (
	"errors"
	"testing"
)

// validSpec builds a minimal two-pass spec that passes validation.
func validSpec() *Spec {
	scale2 := [2]ScaleFactor{NewScaleFactor(2, 1), NewScaleFactor(2, 1)}
	return &Spec{
		ID:   "test_pipeline",
		Name: "Test Pipeline",
		Passes: []Pass{
			{
				ID:     "pass1",
				File:   "pass1.wgsl",
				Inputs: []TextureBinding{{ID: SourceTextureName, Binding: 0}},
				Outputs: []TextureOutput{
					{ID: "TEMP", Binding: 1, Components: 4, ScaleFactor: scale2},
				},
			},
			{
				ID:     "pass2",
				File:   "pass2.wgsl",
				Inputs: []TextureBinding{{ID: "TEMP", Binding: 0}},
				Outputs: []TextureOutput{
					{ID: ResultTextureName, Binding: 1, Components: 4, ScaleFactor: scale2},
				},
			},
		},
	}
}

func kindOf(t *testing.T, err error) ValidationErrorKind {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a *ValidationError", err)
	}
	return verr.Kind
}

func TestValidateOK(t *testing.T) {
	if err := validSpec().Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		want   ValidationErrorKind
	}{
		{"empty id", func(s *Spec) { s.ID = "" }, ErrEmptyID},
		{"empty name", func(s *Spec) { s.Name = "" }, ErrEmptyName},
		{"no passes", func(s *Spec) { s.Passes = nil }, ErrNoPasses},
		{"missing inputs", func(s *Spec) { s.Passes[1].Inputs = nil }, ErrPassMissingInputs},
		{"missing outputs", func(s *Spec) { s.Passes[0].Outputs = nil }, ErrPassMissingOutputs},
		{
			"duplicate input/output binding",
			func(s *Spec) { s.Passes[0].Outputs[0].Binding = 0 },
			ErrDuplicateBinding,
		},
		{
			"duplicate sampler binding",
			func(s *Spec) { s.Passes[1].Samplers = []SamplerBinding{{Binding: 1}} },
			ErrDuplicateBinding,
		},
		{
			"result not in last pass",
			func(s *Spec) { s.Passes[0].Outputs[0].ID = ResultTextureName },
			ErrResultNotInLastPass,
		},
		{
			"texture overwritten",
			func(s *Spec) { s.Passes[1].Outputs[0].ID = "TEMP" },
			ErrTextureOverwritten,
		},
		{
			"source as output",
			func(s *Spec) { s.Passes[1].Outputs[0].ID = SourceTextureName },
			ErrTextureOverwritten,
		},
		{
			"input not found",
			func(s *Spec) { s.Passes[1].Inputs[0].ID = "MISSING" },
			ErrInputTextureNotFound,
		},
		{
			"input from later pass",
			func(s *Spec) { s.Passes[0].Inputs[0].ID = "TEMP2"; s.Passes[1].Outputs[0].ID = "TEMP2" },
			ErrInputTextureNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(spec)
			err := spec.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if got := kindOf(t, err); got != tt.want {
				t.Errorf("got %v, want %v (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestValidateResultInLastPassOnly(t *testing.T) {
	// RESULT in the final pass is the well-formed case and must not
	// trigger the misplacement error.
	spec := validSpec()
	if err := spec.Validate(); err != nil {
		t.Fatalf("RESULT in last pass rejected: %v", err)
	}

	// Moving RESULT to an earlier pass must trigger exactly the
	// misplacement error.
	spec = validSpec()
	spec.Passes[0].Outputs[0].ID = ResultTextureName
	spec.Passes[1].Inputs[0].ID = ResultTextureName
	spec.Passes[1].Outputs[0].ID = "FINAL"
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Kind != ErrResultNotInLastPass {
		t.Fatalf("got %v, want ResultNotInLastPass", err)
	}
	if verr.Pass != 0 {
		t.Errorf("error names pass %d, want 0", verr.Pass)
	}
}

func TestValidationErrorContext(t *testing.T) {
	spec := validSpec()
	spec.Passes[1].Inputs[0].ID = "MISSING"
	err := spec.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a *ValidationError", err)
	}
	if verr.Pass != 1 || verr.Texture != "MISSING" {
		t.Errorf("error context = pass %d texture %q, want pass 1 texture MISSING", verr.Pass, verr.Texture)
	}
}
