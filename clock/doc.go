// Package clock tracks a running deadline for long-running solves.
//
// Deadline is an explicit value threaded through every call that can
// block: the LP backend's time limit and the message-passing solver's
// outer loop. There is no package-level mutable state and no process-wide
// singleton to configure.
package clock
