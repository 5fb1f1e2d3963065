package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasblocks/oaserrors"
)

func TestErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var e *Errors
		assert.Equal(t, 0, e.Len())
		assert.NoError(t, e.Err())
		assert.NoError(t, (&Errors{}).Err())
		assert.Equal(t, "", (&Errors{}).Error())
	})

	t.Run("single error message", func(t *testing.T) {
		e := &Errors{}
		e.Add(&oaserrors.NotFoundError{Name: "x"})
		e.Add(nil)
		assert.Equal(t, 1, e.Len())
		assert.Equal(t, `not found: document named "x"`, e.Error())
	})

	t.Run("multiple errors", func(t *testing.T) {
		e := &Errors{}
		e.Add(&oaserrors.NotSupportedError{Operation: "Root.API"})
		e.Add(&oaserrors.ConfigError{Option: "method"})
		assert.Equal(t, "node: 2 error(s):\n  - not supported: Root.API\n  - configuration error for method", e.Error())

		err := e.Err()
		assert.True(t, errors.Is(err, oaserrors.ErrNotSupported))
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.False(t, errors.Is(err, oaserrors.ErrNotFound))
		assert.Len(t, e.Unwrap(), 2)
	})

	t.Run("fork holds until commit", func(t *testing.T) {
		parent := &Errors{}
		f := parent.fork()
		f.Add(errors.New("held"))
		assert.Equal(t, 0, parent.Len())
		assert.Equal(t, 1, f.Len())

		f.commit()
		assert.Equal(t, 1, parent.Len())
		assert.Equal(t, 0, f.Len())

		f.Add(errors.New("after"))
		assert.Equal(t, 2, parent.Len())
	})

	t.Run("discarded fork never reaches parent", func(t *testing.T) {
		parent := &Errors{}
		f := parent.fork()
		f.Add(errors.New("dropped"))
		assert.Equal(t, 0, parent.Len())
	})
}
