package minutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() Minutes {
	return Minutes{
		ID:    "20240310120000",
		SeqNo: 1,
		Date:  "2024-03-10",
		Topic: "교수법 세미나",
	}
}

func TestWizardPlainSavePath(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), false)
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, w.Step)
	require.NotNil(t, w.Pending)

	w, write, err := w.Confirm(true)
	require.NoError(t, err)
	assert.True(t, write)
	assert.Equal(t, StepSuccess, w.Step)

	w, err = w.Finish()
	require.NoError(t, err)
	assert.Equal(t, StepInput, w.Step)
	assert.Nil(t, w.Pending)
}

func TestWizardConfirmDeclined(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), false)
	require.NoError(t, err)

	w, write, err := w.Confirm(false)
	require.NoError(t, err)
	assert.False(t, write)
	assert.Equal(t, StepInput, w.Step)
}

func TestWizardDuplicateOverwrite(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), true)
	require.NoError(t, err)
	assert.Equal(t, StepCheckDuplicate, w.Step)

	w, write, err := w.Resolve(ResolutionOverwrite)
	require.NoError(t, err)
	assert.True(t, write)
	assert.Equal(t, StepSuccess, w.Step)
	require.NotNil(t, w.Pending)
	assert.Equal(t, "2024-03-10", w.Pending.Date)
}

func TestWizardDuplicateAppend(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), true)
	require.NoError(t, err)

	w, write, err := w.Resolve(ResolutionAppend)
	require.NoError(t, err)
	assert.True(t, write)
	assert.Equal(t, StepSuccess, w.Step)
}

func TestWizardDuplicateAbort(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), true)
	require.NoError(t, err)

	w, write, err := w.Resolve(ResolutionAbort)
	require.NoError(t, err)
	assert.False(t, write)
	assert.Equal(t, StepInput, w.Step)
	assert.Nil(t, w.Pending)
}

func TestWizardInvalidTransitions(t *testing.T) {
	w := NewWizard()

	_, _, err := w.Resolve(ResolutionOverwrite)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = w.Confirm(true)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = w.Finish()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Confirm is not a valid answer to the duplicate check.
	dup, err := w.Submit(testRecord(), true)
	require.NoError(t, err)
	_, _, err = dup.Confirm(true)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Submitting twice without resolving is rejected.
	_, err = dup.Submit(testRecord(), true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWizardUnknownResolution(t *testing.T) {
	w, err := NewWizard().Submit(testRecord(), true)
	require.NoError(t, err)

	_, _, err = w.Resolve(Resolution("maybe"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
