package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// statusForError maps domain and application errors onto HTTP status codes.
//
//   - validation failures           -> 400
//   - unknown order, driver, bill   -> 404
//   - impossible lifecycle moves    -> 409
//   - wrong or locked delivery code -> 422
//   - storage outage                -> 503
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoPendingOrders):
		return http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotDelivered),
		errors.Is(err, order.ErrOrderNotBilled),
		errors.Is(err, order.ErrBillAlreadyGenerated),
		errors.Is(err, billing.ErrBillAlreadySettled),
		errors.Is(err, billing.ErrBillCancelled),
		errors.Is(err, dispatch.ErrDriverNotAvailable),
		errors.Is(err, commands.ErrNoAvailableDrivers):
		return http.StatusConflict

	case errors.Is(err, order.ErrInvalidDeliveryCode),
		errors.Is(err, order.ErrDeliveryCodeLocked):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
