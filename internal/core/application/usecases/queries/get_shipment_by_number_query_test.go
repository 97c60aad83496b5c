package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentByNumberQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentByNumberQuery("40001234")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "40001234", query.Number())
}

func TestNewGetShipmentByNumberQuery_EmptyNumber(t *testing.T) {
	_, err := queries.NewGetShipmentByNumberQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetShipmentByNumberQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentByNumberQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentByNumberQueryIsNotConstructed)
}
