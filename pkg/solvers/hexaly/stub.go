//go:build !hexaly

package hexaly

import "errors"

var errUnavailable = errors.New("this binary was built without Hexaly support (build with -tags hexaly)")

func available() error {
	return errUnavailable
}

func newOptimizer() (Optimizer, error) {
	return nil, errUnavailable
}
