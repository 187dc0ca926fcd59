package testutil

import "errors"

var ErrMockNotFound = errors.New("mock: chapter not found")
