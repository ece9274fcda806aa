// Package signup is the state holder for the signup form: it owns the current
// immutable form state, replaces it on every edit and drives the submission
// status while the form is sent.
package signup
