package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reqErr := &RequestError{
		StatusCode: resp.StatusCode(),
		Body:       responseMessage(resp.Body()),
	}
	if resp.Request != nil {
		reqErr.Method = resp.Request.Method
		reqErr.Endpoint = resp.Request.URL
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		reqErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		reqErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		reqErr.Err = ErrForbidden
	case http.StatusNotFound:
		reqErr.Err = ErrNotFound
	case http.StatusConflict:
		reqErr.Err = ErrConflict
	case http.StatusBadGateway:
		reqErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		reqErr.Err = ErrInternalServerError
	default:
		reqErr.Err = ErrUnexpectedStatus
		if reqErr.Body == "" {
			reqErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return reqErr
}

// responseMessage extracts the "error" field of a JSON error body and falls
// back to the raw text.
func responseMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	return strings.TrimSpace(string(body))
}
