// Package failure is the error-signaling facility shared by the fixed
// containers in this module.
//
// Two categories of failure are distinguished:
//
//   - Positional errors (KindOutOfRange, KindEmpty) are caller bugs. The
//     container is left unchanged.
//   - Capacity errors (KindLength) are expected in constrained settings. The
//     content is clamped to capacity and the error is only raised when the
//     container was built to treat truncation as an error.
//
// How a failure is surfaced is pluggable through Reporter. Three policies
// are built in: Silent, Log (zap) and Raise (panic). Containers always return
// the error as well, so the code calling them works the same under every
// policy.
package failure
