package oracle

import (
	"errors"
	"fmt"
)

// UnknownOpError reports an operation name outside the closed set, or a
// known operation queried at the wrong arity. Both are programming errors;
// there is nothing to recover at runtime.
type UnknownOpError struct {
	Op    Op
	Arity int // 1 or 2, as queried
}

// Error implements the error interface.
func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown %d-operand operation %q", e.Arity, e.Op)
}

// IsUnknownOp returns true if the error is an unknown-operation error.
// Uses errors.As to handle wrapped errors.
func IsUnknownOp(err error) bool {
	var ue *UnknownOpError
	return errors.As(err, &ue)
}

// ConfigError reports an Oracle configuration that cannot describe a lane
// type.
type ConfigError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "invalid oracle config: " + e.Message
}
