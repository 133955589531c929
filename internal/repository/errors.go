package repository

import "fmt"

// DatabaseError wraps a driver failure with the repository operation that hit it
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func dbError(op string, err error) error {
	return &DatabaseError{Op: op, Err: err}
}
