package persistence

import (
	"github.com/pkg/errors"
)

var (
	// ErrPersisterNoResults is returned when a lookup finds nothing
	ErrPersisterNoResults = errors.New("no results from persister")
)
