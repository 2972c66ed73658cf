package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_NewCustomError tests the creation of custom errors.
func Test_NewCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")
	require.NotNil(t, err)
	require.Equal(t, ERR_NOT_FOUND, err.Code())
	require.Equal(t, "resource not found", err.Message())

	secondErr := New(ERR_INVALID_ARGUMENT, "[SampleCandidates][%s] bad request", "_test_string_", err)
	thirdErr := New(ERR_NODE_DISHONEST, "[FilterOutputs][%s] bad record", "_test_string_", secondErr)
	anotherErr := New(ERR_NODE_DISHONEST, "another dishonest node")
	fourthErr := New(ERR_SERVICE_ERROR, "older error: ", thirdErr)
	fifthErr := New(ERR_RING_INVALID, "ring invalid", fourthErr)

	require.True(t, anotherErr.Is(thirdErr))
	require.True(t, fourthErr.Is(New(ERR_NODE_DISHONEST, "")))
	require.True(t, fourthErr.Is(ErrNodeDishonest))

	require.True(t, fourthErr.Is(err))
	require.True(t, fifthErr.Is(thirdErr))
	require.True(t, fifthErr.Is(err))

	require.False(t, anotherErr.Is(fourthErr))
	require.False(t, fifthErr.Is(ErrSamplingExhausted))
}

func Test_FmtErrorCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")

	fmtError := fmt.Errorf("error: %w", err)
	require.NotNil(t, fmtError)

	secondErr := New(ERR_INVALID_ARGUMENT, "[SampleCandidates][%s] failed: ", "_test_string_", fmtError)
	require.NotNil(t, secondErr)

	// the fmt wrapper hides the code from the *Error chain
	require.False(t, secondErr.Is(err))

	altErr := New(ERR_INVALID_ARGUMENT, "invalid argument", err)
	require.True(t, secondErr.Is(altErr))
}

func Test_ErrorIs(t *testing.T) {
	codes := []ERR{
		ERR_NOT_FOUND,
		ERR_INSUFFICIENT_CHAIN_STATE,
		ERR_DISTRIBUTION_INVALID,
		ERR_SAMPLING_EXHAUSTED,
		ERR_INSUFFICIENT_DECOYS,
		ERR_NODE_DISHONEST,
		ERR_UNKNOWN,
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			err := New(code, "some message")
			assert.True(t, errors.Is(err, New(code, "")))
			assert.True(t, Is(err, New(code, "")))
		})
	}
}

func Test_InvalidCode(t *testing.T) {
	err := New(ERR(999), "whatever")
	assert.Equal(t, "invalid error code", err.Message())
	assert.Equal(t, "999", err.Code().String())
}

func Test_WrappedStdError(t *testing.T) {
	base := fmt.Errorf("connection reset")
	err := NewServiceError("get_outs failed", base)

	assert.True(t, errors.Is(err, base))
	assert.True(t, Is(err, ErrServiceError))
	assert.Contains(t, err.Error(), "connection reset")
}

func Test_NilError(t *testing.T) {
	var err *Error

	assert.Equal(t, "<nil>", err.Error())
	assert.Equal(t, ERR_UNKNOWN, err.Code())
	assert.Nil(t, err.Unwrap())
	assert.False(t, err.Is(ErrUnknown))
}

func Test_ErrorData(t *testing.T) {
	err := New(ERR_PROCESSING, "spend position not found")
	err.SetData("index", uint64(42))

	assert.Equal(t, uint64(42), err.GetData("index"))
	assert.Contains(t, err.Error(), "index")
}

func Test_NodeDishonestData(t *testing.T) {
	err := NewNodeDishonestOutputErr("mismatched key", 50, 4)

	var data *NodeDishonestErrData
	require.True(t, AsData(err, &data))
	assert.Equal(t, uint64(50), data.Index)
	assert.Equal(t, 4, data.Position)
	assert.True(t, Is(err, ErrNodeDishonest))

	countErr := NewNodeDishonestCountErr("outputs", 11, 9)

	var countData *NodeDishonestErrData
	require.True(t, AsData(countErr, &countData))
	assert.Equal(t, 11, countData.Expected)
	assert.Equal(t, 9, countData.Received)

	decoded, decodeErr := GetErrorData(ERR_NODE_DISHONEST, data.EncodeErrorData())
	require.NoError(t, decodeErr)
	assert.Equal(t, data, decoded)
}

func Test_As(t *testing.T) {
	err := NewProcessingError("outer", NewInsufficientDecoysError("inner"))

	var tErr *Error
	require.True(t, As(err, &tErr))
	assert.Equal(t, ERR_PROCESSING, tErr.Code())
	assert.True(t, Is(err, ErrInsufficientDecoys))
}

func Test_Join(t *testing.T) {
	assert.Nil(t, Join(nil, nil))
	assert.Equal(t, "a, b", Join(errors.New("a"), nil, errors.New("b")).Error())
}
