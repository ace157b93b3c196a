package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticketeiro/internal/models"
	"ticketeiro/internal/wizard"
)

func TestNextInPersonWalksEveryStep(t *testing.T) {
	state := wizard.NewState(models.EventModeInPerson)

	expected := []wizard.Step{
		wizard.StepSecond,
		wizard.StepThird,
		wizard.StepFourth,
		wizard.StepFifth,
		wizard.StepSixth,
	}
	for _, want := range expected {
		state = state.Next()
		assert.Equal(t, want, state.Step)
	}

	// Clamped at the last step
	state = state.Next()
	assert.Equal(t, wizard.StepSixth, state.Step)
}

func TestNextOnlineSkipsAddress(t *testing.T) {
	state := wizard.NewState(models.EventModeOnline)

	state = state.Next()
	assert.Equal(t, wizard.StepThird, state.Step)

	// After the skip the walk is plain single steps
	state = state.Next()
	assert.Equal(t, wizard.StepFourth, state.Step)
}

func TestPreviousOnlineSkipsAddress(t *testing.T) {
	state := wizard.State{Step: wizard.StepThird, Mode: models.EventModeOnline}

	state = state.Previous()
	assert.Equal(t, wizard.StepFirst, state.Step)

	// Clamped at the first step
	state = state.Previous()
	assert.Equal(t, wizard.StepFirst, state.Step)
}

func TestPreviousInPersonVisitsAddress(t *testing.T) {
	state := wizard.State{Step: wizard.StepThird, Mode: models.EventModeInPerson}

	state = state.Previous()
	assert.Equal(t, wizard.StepSecond, state.Step)

	state = state.Previous()
	assert.Equal(t, wizard.StepFirst, state.Step)
}

func TestModeSwitchMidFlight(t *testing.T) {
	// Walk an in-person draft onto the address step, then switch it to
	// online; the skip condition uses the current mode, so stepping back
	// is a plain single step from SECOND.
	state := wizard.NewState(models.EventModeInPerson).Next()
	assert.Equal(t, wizard.StepSecond, state.Step)

	state = state.SetMode(models.EventModeOnline)
	assert.Equal(t, wizard.StepFirst, state.Previous().Step)
	assert.Equal(t, wizard.StepThird, state.Next().Step)

	// Switching back to in-person from the description step resumes the
	// full walk in both directions.
	state = wizard.State{Step: wizard.StepThird, Mode: models.EventModeOnline}
	state = state.SetMode(models.EventModeInPerson)
	assert.Equal(t, wizard.StepSecond, state.Previous().Step)
}

func TestCanSubmitOnlyOnSummary(t *testing.T) {
	for step := wizard.StepFirst; step < wizard.StepSixth; step++ {
		state := wizard.State{Step: step, Mode: models.EventModeInPerson}
		assert.False(t, state.CanSubmit(), "step %s must not allow submit", step)
	}
	state := wizard.State{Step: wizard.StepSixth, Mode: models.EventModeInPerson}
	assert.True(t, state.CanSubmit())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "FIRST", wizard.StepFirst.String())
	assert.Equal(t, "SIXTH", wizard.StepSixth.String())
	assert.Equal(t, "UNKNOWN", wizard.Step(42).String())
}
