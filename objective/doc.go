// Package objective bridges the hill-climb driver to the external,
// user-supplied objective callable: it applies the minimize/maximize sign
// convention and distinguishes a graceful termination signal from a hard
// error.
package objective
