package registry

const (
	// TokenPlaceholder is substituted with the token in the base URL template.
	TokenPlaceholder = "{uuid}"

	// MaxMintAttempts bounds token regeneration on collision.
	MaxMintAttempts = 8
)
