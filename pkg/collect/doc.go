// Package collect coerces raw query results into typed model values.
//
// The declared return shape is chosen at the call site with a generic
// collector: One, Maybe, Slice, MaybeSlice, or Discard. The chosen
// collector drives how an empty result is interpreted:
//
//   - One: an empty result is an error (ErrEmptyResult)
//   - Maybe: an empty result is nil
//   - Slice: an empty result is an empty slice, never an error
//   - MaybeSlice: an empty result is nil
//   - Discard: the result is dropped; only the error propagates
//
// Raw records may be field maps (rows scanned into map[string]any),
// values already of the target type, or other convertible structs.
// Map records decode through the modelbase pipeline and validate
// against the target schema. Query errors pass through sqlerr
// translation before shape handling, so a driver-level "no rows"
// counts as an empty result rather than a failure.
package collect
