// Package submission describes the status of an in-flight form submission.
//
// Status is a closed set of five values with named predicates, so calling code
// never compares against raw values:
//
//	if state.Status.IsInProgressOrSuccess() {
//	    // show a spinner and disable the submit button
//	}
//
// The zero Status is Initial. Status itself carries no transition rules: the
// surrounding submission workflow simply assigns a new value.
//
// # Tracker
//
// Tracker is an optional, concurrency-safe holder for workflows that want the
// common transitions enforced. It maps named events to statuses and refuses a
// Submit while a submission is already in progress or has succeeded:
//
//	tr := submission.NewTracker(submission.OnChange(func(from, to submission.Status) {
//	    log.Info("status changed", "from", from, "to", to)
//	}))
//	if err := tr.Fire(submission.Submit); submission.IsTransitionRejected(err) {
//	    return // duplicate submit
//	}
//
// # Error Handling
//
// Tracker.Fire returns *ErrTransitionRejected when the event is not allowed in
// the current status; use IsTransitionRejected to detect it. ParseStatus
// returns ErrUnknownStatus for unrecognised names.
package submission
