package spin

type ErrAlreadySpinning struct {
}

func (e *ErrAlreadySpinning) Error() string {
	return "a spin is already in flight"
}

func IsAlreadySpinning(err error) bool {
	_, ok := err.(*ErrAlreadySpinning)
	return ok
}
