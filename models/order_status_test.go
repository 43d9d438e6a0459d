package models_test

import (
	"testing"

	"ortho-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Run("should allow the forward workflow chain", func(t *testing.T) {
		chain := [][2]string{
			{models.StatusDraft, models.StatusInWork},
			{models.StatusInWork, models.StatusWaitingFitting},
			{models.StatusWaitingFitting, models.StatusOnRework},
			{models.StatusOnRework, models.StatusWaitingFitting},
			{models.StatusWaitingFitting, models.StatusReadyForTransfer},
			{models.StatusReadyForTransfer, models.StatusTransferred},
			{models.StatusTransferred, models.StatusIssued},
		}
		for _, pair := range chain {
			assert.True(t, models.CanTransition(pair[0], pair[1]),
				"%s -> %s should be allowed", pair[0], pair[1])
		}
	})

	t.Run("should allow finishing without fitting rounds", func(t *testing.T) {
		// Ready-made TSR and repair orders go straight from work to
		// transfer; a closed rework does the same.
		assert.True(t, models.CanTransition(models.StatusInWork, models.StatusReadyForTransfer))
		assert.True(t, models.CanTransition(models.StatusOnRework, models.StatusReadyForTransfer))
	})

	t.Run("should allow cancel from any non-terminal status", func(t *testing.T) {
		for _, from := range []string{
			models.StatusDraft,
			models.StatusInWork,
			models.StatusWaitingFitting,
			models.StatusOnRework,
			models.StatusReadyForTransfer,
			models.StatusTransferred,
		} {
			assert.True(t, models.CanTransition(from, models.StatusCanceled),
				"%s -> CANCELED should be allowed", from)
		}
	})

	t.Run("should treat ISSUED and CANCELED as terminal", func(t *testing.T) {
		for _, to := range []string{
			models.StatusDraft,
			models.StatusInWork,
			models.StatusCanceled,
		} {
			assert.False(t, models.CanTransition(models.StatusIssued, to))
			assert.False(t, models.CanTransition(models.StatusCanceled, to))
		}
	})

	t.Run("should reject skipping ahead", func(t *testing.T) {
		assert.False(t, models.CanTransition(models.StatusDraft, models.StatusIssued))
		assert.False(t, models.CanTransition(models.StatusDraft, models.StatusTransferred))
		assert.False(t, models.CanTransition(models.StatusInWork, models.StatusIssued))
	})
}

func TestTransition(t *testing.T) {
	t.Run("should return the new status on a legal transition", func(t *testing.T) {
		status, err := models.Transition(models.StatusDraft, models.StatusInWork)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInWork, status)
	})

	t.Run("should return ErrInvalidTransition otherwise", func(t *testing.T) {
		_, err := models.Transition(models.StatusIssued, models.StatusDraft)
		require.Error(t, err)

		var invalid *models.ErrInvalidTransition
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, models.StatusIssued, invalid.From)
		assert.Equal(t, models.StatusDraft, invalid.To)
		assert.Contains(t, err.Error(), "ISSUED -> DRAFT")
	})
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, models.ValidOrderStatus(models.StatusDraft))
	assert.True(t, models.ValidOrderStatus(models.StatusCanceled))
	assert.False(t, models.ValidOrderStatus("SHIPPED"))
	assert.False(t, models.ValidOrderStatus(""))
}
