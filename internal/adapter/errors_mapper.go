package adapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// mapHTTPError turns a non-2xx response into a [RemoteError]. The status
// picks the sentinel family; the daemon's message refines it where one
// status covers several errors.
func mapHTTPError(resp *resty.Response, name string) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = badRequestError(body)
	case http.StatusUnauthorized:
		switch body {
		case app.MsgIncorrectKey, app.MsgCorruptedVerifier:
			sentinel = service.ErrIncorrectKey
		case app.MsgSessionExpired:
			sentinel = service.ErrSessionExpired
		default:
			sentinel = service.ErrSessionNotFound
		}
	case http.StatusNotFound:
		sentinel = &service.SecretNotFoundError{Name: name}
	case http.StatusConflict:
		if body == app.MsgAlreadyInitialized {
			sentinel = service.ErrAlreadyInitialized
		} else {
			sentinel = service.ErrNameAlreadyExists
		}
	case http.StatusPreconditionFailed:
		sentinel = service.ErrUninitialized
	case http.StatusInternalServerError:
		sentinel = service.ErrStorage
	default:
		sentinel = errors.New(http.StatusText(code))
	}

	return &RemoteError{Status: code, Message: body, Err: sentinel}
}

func badRequestError(body string) error {
	switch {
	case strings.HasPrefix(body, "Your password is too long"):
		return service.ErrSecretTooLong
	case strings.HasPrefix(body, "That name can't be used"):
		return service.ErrInvalidSecretName
	case body == app.MsgInvalidDataProvided:
		return errors.New(body)
	default:
		return service.ErrKeyTooLong
	}
}
