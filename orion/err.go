package orion

import "fmt"

// Handle panics if err is not nil. Use it for errors during setup that
// can not be recovered from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
