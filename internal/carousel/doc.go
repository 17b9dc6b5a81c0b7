// Package carousel implements the paging engine behind glide's carousel
// components.
//
// The engine turns continuous drag input and periodic auto-scroll ticks into
// discrete page-index transitions, and derives per-item visual transforms
// (scale, rotation, opacity, z-order) from each item's distance to the
// active page.
//
// The package is split along the same lines as the behavior:
//
//   - Config: immutable per-carousel settings, validated at construction.
//   - State: the page/drag state and its Phase (idle, dragging, settling).
//   - Engine: pure state transitions; the only code that changes State.
//   - TransformFor: pure mapping from (item index, state) to ItemTransform.
//   - Scheduler: the periodic auto-scroll timer and its cancellation.
//   - Controller: ties one Config, one State and one Scheduler together and
//     exposes the host-facing contract (mount, unmount, gestures, snapshot).
//
// All mutation goes through the Engine; hosts read state via
// Controller.Snapshot and Controller.TransformFor rather than poking fields,
// which keeps the index bounds invariant enforceable in one place.
package carousel
