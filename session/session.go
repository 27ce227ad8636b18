// Copyright 2026 The open-eaggr-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package session is the handle-based registry that sits in front of the
// library for callers that want an opaque reference to a DGGS instance
// instead of holding a *eaggr.DGGS directly - a Go-native stand-in for the
// opaque handle the original C interface hands callers across a process
// boundary (spec.md section 9). Registry is safe for concurrent use:
// concurrent operations on two different handles never block each other,
// only operations sharing one handle serialize.
package session

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	eaggr "github.com/riskaware-ltd/open-eaggr-go"
	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
)

// Handle is an opaque reference to an open session.
type Handle uint64

// Session wraps one DGGS instance with the bookkeeping a handle-based API
// needs: a lock so one handle's operations serialize, and the last error
// it produced, for callers that poll rather than check a return value
// immediately.
type Session struct {
	mu        sync.Mutex
	dggs      *eaggr.DGGS
	LastError error
}

// Registry owns a set of open sessions, keyed by Handle. The zero value is
// not usable; construct one with NewRegistry.
type Registry struct {
	sessions sync.Map // Handle -> *Session
	nextID   uint64
	log      *zap.Logger
}

// NewRegistry builds an empty Registry. A nil logger falls back to a
// no-op logger so callers in tests don't need to wire one up.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log}
}

// Open creates a new session over the requested grid and returns its
// handle.
func (r *Registry) Open(kind eaggr.GridKind) (Handle, error) {
	h := Handle(atomic.AddUint64(&r.nextID, 1))
	r.sessions.Store(h, &Session{dggs: eaggr.New(kind)})
	r.log.Debug("session opened", zap.Uint64("handle", uint64(h)), zap.String("grid", kind.String()))
	return h, nil
}

// Close releases a session. Closing a handle that is not open is a no-op,
// matching the original handle-store's idempotent close semantics.
func (r *Registry) Close(h Handle) error {
	_, existed := r.sessions.LoadAndDelete(h)
	if existed {
		r.log.Debug("session closed", zap.Uint64("handle", uint64(h)))
	}
	return nil
}

// Do runs fn against the session's DGGS instance while holding that
// session's own lock - not a registry-wide lock, so concurrent calls
// against different handles run fully in parallel. Whatever error fn
// returns is recorded as the session's LastError and also returned to the
// caller directly.
func (r *Registry) Do(h Handle, fn func(*eaggr.DGGS) error) error {
	v, ok := r.sessions.Load(h)
	if !ok {
		return dggserr.New(dggserr.BadInput, "session handle %d is not open", h)
	}
	s := v.(*Session)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.dggs)
	s.LastError = err
	if err != nil {
		r.log.Warn("session operation failed", zap.Uint64("handle", uint64(h)), zap.Error(err))
	}
	return err
}

// LastError returns the result recorded by the handle's most recent Do: its
// error, or nil if that call succeeded, if no call has been made yet, or if
// the handle is not open.
func (r *Registry) LastError(h Handle) error {
	v, ok := r.sessions.Load(h)
	if !ok {
		return nil
	}
	s := v.(*Session)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastError
}
