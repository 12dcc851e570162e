package files

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digital.vasic.assertions/pkg/failure"
)

var errReported = errors.New("reported")

type mockFailures struct {
	mock.Mock
}

func (m *mockFailures) Failure(info failure.Info, d failure.Descriptor) error {
	return m.Called(info, d).Error(0)
}

type mockFile struct {
	mock.Mock
}

func (m *mockFile) Path() string   { return m.Called().String(0) }
func (m *mockFile) Exists() bool   { return m.Called().Bool(0) }
func (m *mockFile) CanRead() bool  { return m.Called().Bool(0) }
func (m *mockFile) CanWrite() bool { return m.Called().Bool(0) }
func (m *mockFile) IsDir() bool    { return m.Called().Bool(0) }

func TestAssertCanRead_ShouldFailIfActualIsNull(t *testing.T) {
	failures := new(mockFailures)
	info := failure.SomeInfo()
	failures.On("Failure", info, failure.ActualIsNull()).Return(errReported)

	err := New(failures).AssertCanRead(info, nil)

	assert.ErrorIs(t, err, errReported)
	failures.AssertExpectations(t)
}

func TestAssertCanRead_ShouldFailIfTypedNilHandle(t *testing.T) {
	failures := new(mockFailures)
	info := failure.SomeInfo()
	failures.On("Failure", info, failure.ActualIsNull()).Return(errReported)

	var handle *Probe
	err := New(failures).AssertCanRead(info, handle)

	assert.ErrorIs(t, err, errReported)
	failures.AssertExpectations(t)
}

func TestAssertCanRead_ShouldFailIfCanNotRead(t *testing.T) {
	failures := new(mockFailures)
	actual := new(mockFile)
	info := failure.SomeInfo()
	actual.On("CanRead").Return(false)
	failures.On("Failure", info, failure.ShouldBeReadable(actual)).Return(errReported)

	err := New(failures).AssertCanRead(info, actual)

	assert.ErrorIs(t, err, errReported)
	failures.AssertExpectations(t)
	actual.AssertExpectations(t)
}

func TestAssertCanRead_ShouldPassIfActualCanRead(t *testing.T) {
	failures := new(mockFailures)
	actual := new(mockFile)
	actual.On("CanRead").Return(true)

	require.NoError(t, New(failures).AssertCanRead(failure.SomeInfo(), actual))
	failures.AssertNotCalled(t, "Failure", mock.Anything, mock.Anything)
}

func TestAssertCanWrite(t *testing.T) {
	failures := new(mockFailures)
	info := failure.SomeInfo()
	readOnly := new(mockFile)
	readOnly.On("CanWrite").Return(false)
	writable := new(mockFile)
	writable.On("CanWrite").Return(true)
	failures.On("Failure", info, failure.ShouldBeWritable(readOnly)).Return(errReported)

	files := New(failures)

	assert.ErrorIs(t, files.AssertCanWrite(info, readOnly), errReported)
	require.NoError(t, files.AssertCanWrite(info, writable))
	failures.AssertExpectations(t)
}

func TestPredicateVerbs(t *testing.T) {
	dir := &Probe{Name: "/var/data", Present: Fixed(true), Dir: Fixed(true)}
	regular := &Probe{Name: "/etc/hosts", Present: Fixed(true), Dir: Fixed(false)}
	missing := &Probe{Name: "/nope"}

	files := New(failure.NewFailures())
	info := failure.SomeInfo()

	tests := []struct {
		name string
		err  error
		kind failure.Kind
	}{
		{"exists", files.AssertExists(info, regular), ""},
		{"exists fails", files.AssertExists(info, missing), failure.KindShouldExist},
		{"does not exist", files.AssertDoesNotExist(info, missing), ""},
		{"does not exist fails", files.AssertDoesNotExist(info, dir), failure.KindShouldNotExist},
		{"directory", files.AssertIsDirectory(info, dir), ""},
		{"directory fails", files.AssertIsDirectory(info, regular), failure.KindShouldBeDirectory},
		{"file", files.AssertIsFile(info, regular), ""},
		{"file fails on dir", files.AssertIsFile(info, dir), failure.KindShouldBeFile},
		{"file fails on missing", files.AssertIsFile(info, missing), failure.KindShouldBeFile},
		{"readable fails with nil probe", files.AssertCanRead(info, missing), failure.KindShouldBeReadable},
		{"null exists", files.AssertExists(info, nil), failure.KindActualIsNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind == "" {
				assert.NoError(t, tt.err)
				return
			}
			ae, ok := failure.AsAssertionError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, ae.Descriptor.Kind)
		})
	}
}

func TestProbe_MessageUsesPath(t *testing.T) {
	handle := &Probe{Name: "/etc/shadow", Readable: Fixed(false)}

	err := New(failure.NewFailures()).AssertCanRead(failure.SomeInfo(), handle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "</etc/shadow>")
	assert.Contains(t, err.Error(), "to be readable")
	assert.Equal(t, "/etc/shadow", handle.Path())
}

func TestNew_NilReporterPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
