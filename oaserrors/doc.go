// Package oaserrors provides structured error types for the oasblocks library.
//
// Import path: github.com/erraggy/oasblocks/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [DeclarationError]: zero or several roots, a root without a dialect marker
//   - [NotFoundError]: a named api declaration is absent from the aggregated dataset
//   - [NotSupportedError]: an operation that is not legal for a node's dialect
//   - [ConfigError]: invalid arguments such as an unknown HTTP method
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDeclaration]: Matches any [DeclarationError]
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrNotSupported]: Matches any [NotSupportedError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	_, err := builder.BuildAPIDeclaration("pets", units)
//	if errors.Is(err, oaserrors.ErrNotSupported) {
//	    // the aggregated root is not a Swagger 1.2 resource listing
//	}
//
// Extract error details with errors.As():
//
//	var nsErr *oaserrors.NotSupportedError
//	if errors.As(err, &nsErr) {
//	    fmt.Printf("%s is legal under %v\n", nsErr.Operation, nsErr.Supported)
//	}
package oaserrors
