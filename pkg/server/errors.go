package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/repository"
	"droscher.com/CoffeeLedger/pkg/stats"
)

// ErrInternal is all a client learns about a store failure.
var ErrInternal = errors.New("internal error")

// toConnectError maps ledger errors onto connect codes. Anything that is not
// a validation or not-found error is logged with message and hidden from the
// caller.
func toConnectError(logger *zap.Logger, message string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput), errors.Is(err, stats.ErrInvalidWindow):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		logger.Error(message, zap.Error(err))

		return connect.NewError(connect.CodeInternal, ErrInternal)
	}
}

func contextCode(err error) connect.Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return connect.CodeDeadlineExceeded
	}

	return connect.CodeCanceled
}
