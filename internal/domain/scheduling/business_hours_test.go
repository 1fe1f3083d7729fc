package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

func TestBusinessHours_Opening(t *testing.T) {
	hours := DefaultBusinessHours()

	tooEarly := iv(t, 7, 59, 9, 0)
	err := hours.Validate(tooEarly)
	assert.True(t, httperr.IsBusiness(err, "too_early"))

	onOpen := iv(t, 8, 0, 9, 0)
	assert.NoError(t, hours.Validate(onOpen))
}

func TestBusinessHours_Closing_HourComponentOnly(t *testing.T) {
	hours := DefaultBusinessHours()

	// The close check looks at the hour component only: 18:45 still has
	// hour 18 and passes.
	pastNominalClose := iv(t, 17, 0, 18, 45)
	assert.NoError(t, hours.Validate(pastNominalClose))

	onClose := iv(t, 17, 0, 18, 0)
	assert.NoError(t, hours.Validate(onClose))

	tooLate := iv(t, 17, 30, 19, 0)
	err := hours.Validate(tooLate)
	assert.True(t, httperr.IsBusiness(err, "too_late"))
}

func TestBusinessHours_TooEarlyReportedFirst(t *testing.T) {
	hours := DefaultBusinessHours()

	bothOutside := iv(t, 6, 0, 20, 0)
	err := hours.Validate(bothOutside)
	assert.True(t, httperr.IsBusiness(err, "too_early"))
}

func TestBusinessHours_StrictClose(t *testing.T) {
	hours := DefaultBusinessHours()
	hours.StrictClose = true

	pastClose := iv(t, 17, 30, 18, 45)
	err := hours.Validate(pastClose)
	assert.True(t, httperr.IsBusiness(err, "too_late"))

	onClose := iv(t, 17, 0, 18, 0)
	require.NoError(t, hours.Validate(onClose))
}
