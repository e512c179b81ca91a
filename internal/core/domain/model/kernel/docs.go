// Package kernel provides the shared value objects of the galapagos domain.
//
// The package includes:
//   - ID: the ObjectID-shaped identifier of every business-store document
//   - Coordinates: a validated latitude/longitude pair with great-circle helpers
//
// Both are immutable and safe for concurrent use. Zero values are invalid and
// fail Validate, so an identifier that never went through a constructor cannot
// reach a repository.
package kernel
