package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	notFound := NewNotFoundError("pokemon 'missingno' not found")
	require.ErrorIs(t, notFound, ErrNotFound)
	require.NotErrorIs(t, notFound, ErrUpstreamUnavailable)
	require.Equal(t, "not_found: pokemon 'missingno' not found", notFound.Error())

	wrapped := fmt.Errorf("fetch species: %w", NewUpstreamUnavailableError("timeout"))
	require.ErrorIs(t, wrapped, ErrUpstreamUnavailable)

	var typed *Error
	require.True(t, errors.As(wrapped, &typed))
	require.Equal(t, CodeUpstreamUnavailable, typed.Code)

	require.ErrorIs(t, NewInvalidArgumentError("empty"), ErrInvalidArgument)
}

func TestErrorIsEmpty(t *testing.T) {
	t.Parallel()

	var nilErr *Error
	require.True(t, nilErr.IsEmpty())
	require.True(t, EmptyError.IsEmpty())
	require.Equal(t, "", nilErr.String())
	require.False(t, NewError("x", "y").IsEmpty())
}
