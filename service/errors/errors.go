package errors

type NilConfigError struct{}

func (e *NilConfigError) Error() string {
	return "MainConfig can not be nil"
}

type JobNotFoundError struct{}

func (e *JobNotFoundError) Error() string {
	return "render job not found"
}

type UnknownJobStateError struct{}

func (e *UnknownJobStateError) Error() string {
	return "render job is in an unknown state"
}

type InvalidJobStateError struct{}

func (e *InvalidJobStateError) Error() string {
	return "render job is not in a state that allows this operation"
}
