package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, "operation failed")

	require.NotNil(t, err)
	require.Equal(t, cause, Unwrap(err))
	require.Equal(t, "operation failed\n  caused by: original error", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, "test"))
	require.Nil(t, Wrapf(nil, "test %s", "arg"))
	require.Nil(t, WrapFunc(nil, func() string { return "test" }))
}

func TestWrap_TwiceDisplaysThreeLines(t *testing.T) {
	cause := stderrors.New("E")
	err := Wrap(Wrap(cause, "A"), "B")

	require.Equal(t, "B\n  caused by: A\n  caused by: E", err.Error())
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrapf(cause, "failed to connect to %s:%d", "localhost", 5432)

	var link *ContextualError
	require.True(t, As(err, &link))
	require.Equal(t, "failed to connect to localhost:5432", link.Message())
	require.Equal(t, cause, link.Unwrap())
}

func TestWrapf_Formatting(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{
			name:   "string formatting",
			format: "Failed to set profile '%s'",
			args:   []any{"balanced"},
			want:   "Failed to set profile 'balanced'",
		},
		{
			name:   "integer formatting",
			format: "attempt %d of %d",
			args:   []any{2, 3},
			want:   "attempt 2 of 3",
		},
		{
			name:   "no arguments",
			format: "plain message",
			want:   "plain message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrapf(stderrors.New("cause"), tt.format, tt.args...)
			require.Equal(t, tt.want, Chain(err)[0])
		})
	}
}

func TestWrapFunc_OnlyCalledOnFailure(t *testing.T) {
	calls := 0
	message := func() string {
		calls++
		return "lazy message"
	}

	require.Nil(t, WrapFunc(nil, message))
	require.Equal(t, 0, calls)

	err := WrapFunc(stderrors.New("boom"), message)
	require.Equal(t, 1, calls)
	require.Equal(t, "lazy message\n  caused by: boom", err.Error())
}

func TestWrap_PreservesSentinel(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(Wrapf(sentinel, "layer %d", 1), "layer 2")

	require.True(t, stderrors.Is(err, sentinel))
	require.Equal(t, sentinel, Root(err))
}
