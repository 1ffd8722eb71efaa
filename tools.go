//go:build tools
// +build tools

// Package tools pins the mockgen version used by the go:generate
// directives of the module.
package boozbaal_chat

import (
	_ "go.uber.org/mock/mockgen"
)
