package fcm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendErrorWrapsCause(t *testing.T) {
	cause := errors.New("requested entity was not found")
	err := &SendError{Reason: ReasonUnregistered, Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "unregistered")
	require.Contains(t, err.Error(), cause.Error())
}

func TestClassifyErrorDefaultsToUnknown(t *testing.T) {
	// Errors without Firebase platform metadata cannot be classified
	require.Equal(t, ReasonUnknown, ClassifyError(errors.New("connection reset")))
	require.Equal(t, ReasonUnknown, ClassifyError(nil))
}
