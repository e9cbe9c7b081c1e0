//go:build tools

package tools

// Tool dependencies tracked with blank imports so go.mod pins their versions.
// Regenerate mocks with: go run github.com/vektra/mockery/v2
import (
	_ "github.com/vektra/mockery/v2"
)
