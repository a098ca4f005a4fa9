package service

import "fmt"

// Rejection is a business-rule or input failure. The HTTP layer maps it to a
// 400 response; anything else coming out of the service is a backend failure.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func rejectf(format string, args ...interface{}) error {
	return &Rejection{Message: fmt.Sprintf(format, args...)}
}
