package orion

import "fmt"

// Handle panics if err is not nil. The panic value wraps err with
// the formatted description.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(fmt.Errorf("%s: %w", text, err))
	}
}
