package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// errorStatus lists the sentinel errors with a dedicated status code, first match wins.
var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrCreatedObjectAbsent, http.StatusUnprocessableEntity},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidJsonFormat, http.StatusBadRequest},
	{domain.ErrInvalidNumberFormat, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrInvalidObjectId, http.StatusBadRequest},
	{domain.ErrUnsupportedNetwork, http.StatusBadRequest},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrMintStatus, http.StatusConflict},
	{domain.ErrCollectionClosed, http.StatusConflict},
	{domain.ErrTxFailed, http.StatusBadGateway},
	{domain.ErrRpcFailed, http.StatusBadGateway},
	{domain.ErrTxTimeout, http.StatusGatewayTimeout},
}

// StatusOf returns the status for err, or fallback when err has none.
func StatusOf(err error, fallback int) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	for _, s := range errorStatus {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
