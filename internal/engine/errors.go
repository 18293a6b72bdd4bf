package engine

import "errors"

// ErrStorageUnavailable reports a persistence failure. The event either
// fully committed or fully aborted; the caller should retry the whole
// event later. It is never masked as success.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrBusy reports per-user contention when the dispatcher runs in
// non-blocking mode. The caller retries.
var ErrBusy = errors.New("user session busy")
