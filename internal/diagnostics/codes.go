package diagnostics

// Code is a stable, greppable error identifier. The rendered message embeds
// the code as a prefix so tooling can match on it; everything after the
// prefix is human-language prose and may change freely.
type Code string

const (
	// Lexical / structural syntax.
	ErrUnexpectedToken Code = "E_UNEXPECTED_TOKEN"
	ErrUnterminated    Code = "E_UNTERMINATED"
	ErrBadLiteral      Code = "E_BAD_LITERAL"
	ErrLegacySyntax    Code = "E_LEGACY_SYNTAX"

	// Names.
	ErrUnknownCall       Code = "E_UNKNOWN_CALL"
	ErrCallTailNoSeed    Code = "E_CALL_TAIL_NO_SEED"
	ErrCallTailAmbiguous Code = "E_CALL_TAIL_AMBIGUOUS"
	ErrSeedNameConflict  Code = "E_SEED_NAME_CONFLICT_HA"
	ErrSeedRedefined     Code = "E_SEED_REDEFINED"
	ErrWriteUndeclared   Code = "E_WRITE_UNDECLARED"

	// Argument binding.
	ErrPinNotFound        Code = "E_PIN_NOT_FOUND"
	ErrDupBinding         Code = "E_DUP_BINDING"
	ErrParticleNotAllowed Code = "E_PARTICLE_NOT_ALLOWED_FOR_PIN"
	ErrNoParamForParticle Code = "E_NO_PARAM_FOR_PARTICLE"
	ErrAmbiguousParticle  Code = "E_AMBIGUOUS_PARTICLE"
	ErrMissingRequiredArg Code = "E_MISSING_REQUIRED_ARG"
	ErrTooManyArgs        Code = "E_TOO_MANY_ARGS"
	ErrFlowInjectAmbiguous Code = "E_FLOW_INJECT_AMBIGUOUS"
	ErrFlowPlaceholder     Code = "E_FLOW_PLACEHOLDER"

	// Units.
	ErrUnitMismatch Code = "E_UNIT_MISMATCH"
	ErrUnknownUnit  Code = "E_UNKNOWN_UNIT"

	// Purity.
	ErrThunkImpure Code = "E_THUNK_IMPURE"
	ErrGuardBody   Code = "E_GUARD_BODY"
)
