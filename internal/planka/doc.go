// Package planka implements a typed client for the Planka REST API.
//
// One method corresponds to one API operation. Single entities arrive
// wrapped in an {"item": ...} envelope, collections in {"items": [...]};
// both are unwrapped at this boundary so callers only ever see the typed
// entities. All methods take a context so an interrupted invocation
// aborts the request in flight.
package planka
