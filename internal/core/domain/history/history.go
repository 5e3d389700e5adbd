/*
Package history defines core domain entities related to command history.
*/
package history

import "fmt"

/*
Entry is a history line as it is displayed: Index is 1-based and Line is the
submitted text after newline trimming.
*/
type Entry struct {
	Index int
	Line  string
}

// String formats the entry the way the history command lists it.
func (e Entry) String() string {
	return fmt.Sprintf("%d: %s", e.Index, e.Line)
}
