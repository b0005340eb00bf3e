package pipeline

// Validate checks the specification for structural and referential
// integrity. It returns a *ValidationError identifying the first defect
// found, or nil for a well-formed specification.
//
// Validate does not require compilation; callers may run it standalone,
// and Compile runs it implicitly.
func (s *Spec) Validate() error {
	if s.ID == "" {
		return &ValidationError{Kind: ErrEmptyID}
	}
	if s.Name == "" {
		return &ValidationError{Kind: ErrEmptyName}
	}
	if len(s.Passes) == 0 {
		return &ValidationError{Kind: ErrNoPasses}
	}

	for i, pass := range s.Passes {
		if len(pass.Inputs) == 0 {
			return &ValidationError{Kind: ErrPassMissingInputs, Pass: i}
		}
		if len(pass.Outputs) == 0 {
			return &ValidationError{Kind: ErrPassMissingOutputs, Pass: i}
		}
	}

	// Binding points must be unique within a pass across inputs, outputs
	// and samplers.
	for i, pass := range s.Passes {
		used := make(map[uint32]bool)
		for _, input := range pass.Inputs {
			if used[input.Binding] {
				return &ValidationError{Kind: ErrDuplicateBinding, Pass: i, Binding: input.Binding}
			}
			used[input.Binding] = true
		}
		for _, output := range pass.Outputs {
			if used[output.Binding] {
				return &ValidationError{Kind: ErrDuplicateBinding, Pass: i, Binding: output.Binding}
			}
			used[output.Binding] = true
		}
		for _, sampler := range pass.Samplers {
			if used[sampler.Binding] {
				return &ValidationError{Kind: ErrDuplicateBinding, Pass: i, Binding: sampler.Binding}
			}
			used[sampler.Binding] = true
		}
	}

	// RESULT may only be written by the final pass.
	for i, pass := range s.Passes {
		for _, output := range pass.Outputs {
			if output.ID == ResultTextureName && i != len(s.Passes)-1 {
				return &ValidationError{Kind: ErrResultNotInLastPass, Pass: i}
			}
		}
	}

	// Each logical texture is produced exactly once. SOURCE always exists
	// and may never be an output.
	created := map[string]bool{SourceTextureName: true}
	for i, pass := range s.Passes {
		for _, output := range pass.Outputs {
			if created[output.ID] {
				return &ValidationError{Kind: ErrTextureOverwritten, Pass: i, Texture: output.ID}
			}
			created[output.ID] = true
		}
	}

	// Each input must be SOURCE or the output of an earlier pass.
	available := map[string]bool{SourceTextureName: true}
	for i, pass := range s.Passes {
		for _, input := range pass.Inputs {
			if !available[input.ID] {
				return &ValidationError{Kind: ErrInputTextureNotFound, Pass: i, Texture: input.ID}
			}
		}
		for _, output := range pass.Outputs {
			available[output.ID] = true
		}
	}

	return nil
}
