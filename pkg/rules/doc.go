// Package rules provides ready-made field.Rule constructors for common checks
// on strings, numbers and choices.
//
// Every constructor returns a field.Rule[T, Violation]. A Violation carries a
// human readable message plus a translation key and parameters, so the UI can
// localize it:
//
//	var Email = field.NewCachedKind("email", rules.First(
//	    rules.Required(),
//	    rules.Email(),
//	))
//
//	if v := Email.Dirty(input).DisplayError(); v != nil {
//	    render(translator.T(v.Key, v.Params))
//	}
//
// First chains rules and reports only the first failure, so a field always
// carries at most one error value.
//
// Rules are stateless and safe for concurrent use. Length rules count
// characters of the NFC normalized text, not bytes. Pattern based rules
// (Email, Matches) are comparatively expensive; pair them with
// field.CachedKind.
package rules
