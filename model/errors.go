package model

import "fmt"

type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument '%s': %s", e.Argument, e.Message)
}

type DatabaseNotFoundError struct {
	Name string
}

func (e DatabaseNotFoundError) Error() string {
	return fmt.Sprintf("Database '%s' is not registered", e.Name)
}

type DatabaseAlreadyExistsError struct {
	Name string
}

func (e DatabaseAlreadyExistsError) Error() string {
	return fmt.Sprintf("Database '%s' is already registered", e.Name)
}

// RemoteError is returned when ArangoDB answers with a non-success status code
type RemoteError struct {
	HttpCode int
	Message  string
	Errors   error
}

func (e RemoteError) Error() string {
	return fmt.Sprintf("Response code: %d, Message: %s", e.HttpCode, e.Message)
}

func (e RemoteError) Unwrap() error {
	return e.Errors
}

// DecodeError is returned when a response body does not match the expected shape
type DecodeError struct {
	Target string
	Errors error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode response into %s: %v", e.Target, e.Errors)
}

func (e DecodeError) Unwrap() error {
	return e.Errors
}
