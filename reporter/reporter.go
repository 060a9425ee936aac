// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter contains the types used for reporting errors and warnings
// while formatting.
package reporter

import (
	"errors"
	"sync"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, formatting aborts with that error. If the reporter
// returns nil, formatting continues where it can, and the call eventually
// fails with [ErrInvalidSource].
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This is
// used for conditions that do not cause formatting to fail, such as a
// construct that was copied through verbatim because it could not be
// formatted.
type WarningReporter func(ErrorWithPos)

// Reporter is a type that handles reporting both errors and warnings.
type Reporter interface {
	// Error is called when the given error is encountered. If it returns a
	// non-nil error, formatting is aborted.
	Error(ErrorWithPos) error
	// Warning is called when the given warning is encountered.
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by formatters to report errors and warnings. It tracks
// the first error returned by the reporter, so that a single handler can be
// shared by concurrent formatting calls.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors and warnings using
// the given reporter. A nil reporter fails on the first error and ignores
// warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given position, creating the error
// from the given format and arguments.
func (h *Handler) HandleErrorf(pos Position, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If it is an [ErrorWithPos], it is
// passed to the reporter; otherwise it is recorded as is.
//
// Once the reporter has returned an error, every later call returns that
// same error.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning handles a warning with the given position.
func (h *Handler) HandleWarning(pos Position, err error) {
	// Warnings don't interact with mutable fields.
	h.reporter.Warning(Error(pos, err))
}

// Error returns the handler result. If any errors have been reported, this
// returns a non-nil error. If the reporter never returned a non-nil error,
// [ErrInvalidSource] is returned.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
