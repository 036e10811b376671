package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

var kindStatus = map[model.ErrorKind]int{
	model.KindNotFound:      http.StatusNotFound,
	model.KindNoData:        http.StatusNotFound,
	model.KindURL:           http.StatusBadRequest,
	model.KindUnsupported:   http.StatusNotImplemented,
	model.KindUnimplemented: http.StatusNotImplemented,
	model.KindConnectivity:  http.StatusServiceUnavailable,
	model.KindBadResponse:   http.StatusBadGateway,
	model.KindMalformed:     http.StatusBadGateway,
	model.KindMapping:       http.StatusBadGateway,
	model.KindAmbiguous:     http.StatusBadGateway,
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// httpStatus maps a client error onto the status the gateway answers with.
func httpStatus(err error) (int, errorResponse) {
	var e *model.Error
	if errors.As(err, &e) {
		code, ok := kindStatus[e.Kind]
		if !ok {
			code = http.StatusInternalServerError
		}
		return code, errorResponse{Kind: e.Kind.String(), Message: err.Error()}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, errorResponse{Kind: "timeout", Message: err.Error()}
	}
	return http.StatusInternalServerError, errorResponse{Kind: "internal", Message: err.Error()}
}
