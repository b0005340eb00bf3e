package pipeline

import "fmt"

// ValidationErrorKind categorizes pipeline specification validation errors.
type ValidationErrorKind uint8

const (
	// ErrEmptyID indicates an empty pipeline id field.
	ErrEmptyID ValidationErrorKind = iota

	// ErrEmptyName indicates an empty pipeline name field.
	ErrEmptyName

	// ErrNoPasses indicates a pipeline with no shader passes.
	ErrNoPasses

	// ErrPassMissingInputs indicates a pass with no input textures.
	ErrPassMissingInputs

	// ErrPassMissingOutputs indicates a pass with no output textures.
	ErrPassMissingOutputs

	// ErrDuplicateBinding indicates two bindings in one pass sharing a
	// binding point.
	ErrDuplicateBinding

	// ErrResultNotInLastPass indicates a RESULT output in a pass other
	// than the final one.
	ErrResultNotInLastPass

	// ErrTextureOverwritten indicates a logical texture produced as an
	// output more than once.
	ErrTextureOverwritten

	// ErrInputTextureNotFound indicates an input not produced by any
	// earlier pass and not SOURCE.
	ErrInputTextureNotFound
)

// String returns a human-readable validation error kind name.
func (k ValidationErrorKind) String() string {
	switch k {
	case ErrEmptyID:
		return "EmptyID"
	case ErrEmptyName:
		return "EmptyName"
	case ErrNoPasses:
		return "NoPasses"
	case ErrPassMissingInputs:
		return "PassMissingInputs"
	case ErrPassMissingOutputs:
		return "PassMissingOutputs"
	case ErrDuplicateBinding:
		return "DuplicateBinding"
	case ErrResultNotInLastPass:
		return "ResultNotInLastPass"
	case ErrTextureOverwritten:
		return "TextureOverwritten"
	case ErrInputTextureNotFound:
		return "InputTextureNotFound"
	default:
		return "Unknown"
	}
}

// ValidationError is a structural defect found in a pipeline specification.
// Pass, Texture, and Binding carry the identifying context for the kinds
// that have one.
type ValidationError struct {
	// Kind is the validation error category.
	Kind ValidationErrorKind
	// Pass is the index of the offending pass, where applicable.
	Pass int
	// Texture is the offending logical texture id, where applicable.
	Texture string
	// Binding is the duplicated binding point for ErrDuplicateBinding.
	Binding uint32
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrEmptyID:
		return "pipeline id cannot be empty"
	case ErrEmptyName:
		return "pipeline name cannot be empty"
	case ErrNoPasses:
		return "pipeline must have at least one pass"
	case ErrPassMissingInputs:
		return fmt.Sprintf("pass %d is missing inputs", e.Pass)
	case ErrPassMissingOutputs:
		return fmt.Sprintf("pass %d is missing outputs", e.Pass)
	case ErrDuplicateBinding:
		return fmt.Sprintf("duplicate binding %d in pass %d", e.Binding, e.Pass)
	case ErrResultNotInLastPass:
		return fmt.Sprintf("RESULT output found in pass %d but must only be in the last pass", e.Pass)
	case ErrTextureOverwritten:
		return fmt.Sprintf("texture %q is being overwritten in pass %d", e.Texture, e.Pass)
	case ErrInputTextureNotFound:
		return fmt.Sprintf("input texture %q in pass %d was not created by any previous pass or is not SOURCE", e.Texture, e.Pass)
	default:
		return fmt.Sprintf("validation error %d in pass %d", e.Kind, e.Pass)
	}
}
