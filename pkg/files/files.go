// Package files provides the value comparator for file handles.
// Files have no natural ordering, so only predicate verbs are
// offered. The predicates are answered by the handle itself; this
// package performs no I/O.
package files

import (
	"digital.vasic.assertions/pkg/comparables"
	"digital.vasic.assertions/pkg/failure"
)

// File is a file handle whose capabilities were resolved by the
// caller.
type File interface {
	Path() string
	Exists() bool
	CanRead() bool
	CanWrite() bool
	IsDir() bool
}

// Files exposes the assertion verbs for File handles.
type Files struct {
	failures failure.Reporter
}

// New creates Files. It panics if failures is nil.
func New(failures failure.Reporter) *Files {
	if failures == nil {
		panic("files: nil failure reporter")
	}
	return &Files{failures: failures}
}

func (f *Files) check(
	info failure.Info,
	actual File,
	holds func(File) bool,
	describe func(any) failure.Descriptor,
) error {
	if err := comparables.NotNil(f.failures, info, actual); err != nil {
		return err
	}
	if holds(actual) {
		return nil
	}
	return f.failures.Failure(info, describe(actual))
}

// AssertCanRead checks that actual is readable.
func (f *Files) AssertCanRead(info failure.Info, actual File) error {
	return f.check(info, actual, File.CanRead, failure.ShouldBeReadable)
}

// AssertCanWrite checks that actual is writable.
func (f *Files) AssertCanWrite(info failure.Info, actual File) error {
	return f.check(info, actual, File.CanWrite, failure.ShouldBeWritable)
}

// AssertExists checks that actual exists.
func (f *Files) AssertExists(info failure.Info, actual File) error {
	return f.check(info, actual, File.Exists, failure.ShouldExist)
}

// AssertDoesNotExist checks that actual does not exist.
func (f *Files) AssertDoesNotExist(info failure.Info, actual File) error {
	return f.check(info, actual, func(file File) bool {
		return !file.Exists()
	}, failure.ShouldNotExist)
}

// AssertIsDirectory checks that actual is an existing directory.
func (f *Files) AssertIsDirectory(info failure.Info, actual File) error {
	return f.check(info, actual, func(file File) bool {
		return file.Exists() && file.IsDir()
	}, failure.ShouldBeDirectory)
}

// AssertIsFile checks that actual is an existing non-directory.
func (f *Files) AssertIsFile(info failure.Info, actual File) error {
	return f.check(info, actual, func(file File) bool {
		return file.Exists() && !file.IsDir()
	}, failure.ShouldBeFile)
}
