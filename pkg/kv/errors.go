package kv

import (
	"errors"
	"fmt"
)

// ErrMiss is returned when a key holds no record, either because nothing was
// written or because the TTL expired.
var ErrMiss = errors.New("kv: record not found")

// ErrTxConflict is returned when an Atomic block loses its watch on every
// attempt. Callers treat it like any other transient store failure.
var ErrTxConflict = errors.New("kv: watch conflict persisted across retries")

// ConfigError reports a record type used without a registered key template.
type ConfigError struct {
	Type string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("kv: no key template registered for record type %s", e.Type)
}
