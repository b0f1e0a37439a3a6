package vi

import "fmt"

// SearchError is the only hard error this engine raises. It wraps a
// pattern compilation or matcher failure; everything else that could go
// wrong during command execution (no target, empty range, history
// bounds) is absorbed as a no-op instead.
type SearchError struct {
	Term string
	Err  error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %q: %v", e.Term, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
