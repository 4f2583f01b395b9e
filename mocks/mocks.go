// Package mocks holds testify mocks for the repository interfaces.
package mocks

import "github.com/stretchr/testify/mock"

func pointerResult[T any](args mock.Arguments, index int) *T {
	result, _ := args.Get(index).(*T)

	return result
}
