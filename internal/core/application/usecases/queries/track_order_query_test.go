package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery_Valid(t *testing.T) {
	trackingID := kernel.NewUUID()
	query, err := queries.NewTrackOrderQuery(trackingID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, trackingID, query.TrackingID())
}

func TestNewTrackOrderQuery_InvalidTrackingID(t *testing.T) {
	_, err := queries.NewTrackOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestTrackOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackOrderQueryIsNotConstructed)
}
