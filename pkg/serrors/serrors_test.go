package serrors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"stalepr/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeError struct{ offset int }

func (e decodeError) Error() string { return fmt.Sprintf("unexpected byte at %d", e.offset) }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrMalformedInput,
		serrors.ErrMissingField,
		serrors.ErrMissingSink,
		serrors.ErrIO,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	e1 := serrors.With(serrors.ErrMissingSink, "%s is not set", "GITHUB_OUTPUT")
	require.Equal(t, "GITHUB_OUTPUT is not set", e1.Error())

	e2 := serrors.Wrap(serrors.ErrIO, fs.ErrPermission, "could not open %s", "summary.md")
	require.Equal(t, "could not open summary.md: permission denied", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrMissingField)
	require.Equal(t, "MISSING_FIELD", e3.Error())

	var e4 *serrors.Error
	require.Equal(t, "<nil>", e4.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := decodeError{offset: 12}
	err := fmt.Errorf("could not read outputs/a.json: %w",
		serrors.Wrap(serrors.ErrMalformedInput, base, "decode records"))

	require.ErrorIs(t, err, serrors.ErrMalformedInput)
	require.ErrorIs(t, err, base)
	require.NotErrorIs(t, err, serrors.ErrMissingField)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &decodeError{offset: 3}
	err := serrors.Wrap(serrors.ErrMalformedInput, base, "decode records")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrMalformedInput, k)

	var de *decodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, base, de)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("digest: %w", serrors.With(serrors.ErrMissingField, "record 2 has no url"))
	require.Equal(t, serrors.ErrMissingField, serrors.KindOf(wrapped))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	base := errors.New("disk full")
	e := serrors.Wrap(serrors.ErrIO, base, "append summary")
	require.Equal(t, serrors.ErrIO, e.Kind())
	require.Equal(t, "append summary", e.Message())
	require.Equal(t, base, e.Cause())
}
