// Package domain contains the core template scaffolding workflow and the
// rewrite engine.
package domain

import "errors"

// ErrBinaryContent is returned when a file inside the template tree does not
// decode as UTF-8 text. The engine does not distinguish binary files up
// front; failing to decode is a hard error that aborts the walk.
var ErrBinaryContent = errors.New("file content is not valid UTF-8 text")

// ErrRenameCollision is returned when a substituted entry name resolves to a
// path that already exists. The walk fails fast instead of silently
// overwriting the earlier entry.
var ErrRenameCollision = errors.New("rename collision")

// Other failure modes (path not found, permission denied, write failures)
// surface as wrapped os errors; none are retried and no rollback is
// attempted.
