package policy

// Denial and confirmation wording. Fixed strings so the agent-facing
// behavior is stable across releases.
const (
	msgRemoveForbidden = "rm is forbidden. Use trash command to delete files. Example: trash <path...>"

	msgDestructiveFindFmt = "Destructive find command detected: %s. This operation may delete or modify files. Please confirm."

	msgStrictAllow = "Adding #[allow(...)] or #![allow(...)] attributes is not permitted. " +
		"Fix the underlying issue instead of suppressing the warning."

	msgStrictExpect = "Adding #[expect(...)] or #![expect(...)] attributes is not permitted. " +
		"Fix the underlying issue instead of suppressing the warning."

	msgStrictBoth = "Adding #[allow(...)] or #[expect(...)] attributes is not permitted. " +
		"Fix the underlying issue instead of suppressing the warning."

	msgLenientAllow = "Adding #[allow(...)] or #![allow(...)] attributes is not permitted. " +
		"Use #[expect(...)] instead, which will warn when the lint is no longer triggered."
)
