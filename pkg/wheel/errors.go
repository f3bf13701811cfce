package wheel

import "fmt"

type ErrInvalidLabelCount struct {
	Count int
}

func (e *ErrInvalidLabelCount) Error() string {
	return fmt.Sprintf("label count %d is outside [%d, %d]", e.Count, MinSectors, MaxSectors)
}

func IsInvalidLabelCount(err error) bool {
	_, ok := err.(*ErrInvalidLabelCount)
	return ok
}
