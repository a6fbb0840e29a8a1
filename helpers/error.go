package helpers

import "strings"

// Errors is a list of independent failures, config and menu checks report all at once.
type Errors []error

func (self Errors) Error() string {
	ss := make([]string, len(self))
	for i, e := range self {
		ss[i] = e.Error()
	}
	return strings.Join(ss, "\n")
}

// FoldErrors skips nil items. Single error is returned unchanged so
// errors.IsNotFound and friends still work, several are wrapped in Errors.
func FoldErrors(errs []error) error {
	var list Errors
	for _, e := range errs {
		if e != nil {
			list = append(list, e)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}
	return list
}
