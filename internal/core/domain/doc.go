// Package domain contains the core business types for grumble.
//
// The domain layer has no dependencies on adapters or external
// libraries. Rewrite configuration, application settings and history
// records live here; the rewrite algorithm itself lives in
// internal/rewrite and consumes these types.
package domain
