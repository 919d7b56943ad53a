// Package client implements a very simple wrapper for the wallet engine's web API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized defines the "unauthorized" error.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
	// ErrNotImplemented defines the "operation not implemented/supported/available" error.
	ErrNotImplemented = errors.New("operation not implemented/supported/available")
)

const (
	contentTypeJSON = "application/json"
)

// NewWalletEngineAPI returns a new *WalletEngineAPI with the given baseURL and the given setters applied.
func NewWalletEngineAPI(baseURL string, setters ...Option) *WalletEngineAPI {
	api := &WalletEngineAPI{baseURL: baseURL}
	for _, setter := range setters {
		setter(api)
	}

	return api
}

// WalletEngineAPI is an API wrapper over the web API of the wallet engine.
type WalletEngineAPI struct {
	httpClient http.Client
	baseURL    string
	jwt        string
}

type errorresponse struct {
	Error string `json:"error"`
}

// interpretBody consumes the response and maps the engine's error contract onto the exported sentinel errors. The
// engine reports errors as {"error": "..."} and the message is preserved in the wrapped error.
func interpretBody(res *http.Response, decodeTo interface{}) error {
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("unable to read response body: %w", err)
	}

	if res.StatusCode == http.StatusOK || res.StatusCode == http.StatusCreated {
		if decodeTo == nil {
			return nil
		}
		return json.Unmarshal(resBody, decodeTo)
	}

	errRes := &errorresponse{}
	if err := json.Unmarshal(resBody, errRes); err != nil {
		return fmt.Errorf("unable to read error from response body: %w", err)
	}

	switch res.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errRes.Error)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, errRes.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, res.Request.URL.String())
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	case http.StatusNotImplemented:
		return fmt.Errorf("%w: %s", ErrNotImplemented, errRes.Error)
	}

	return fmt.Errorf("%w: %s", ErrUnknownError, errRes.Error)
}

func (api *WalletEngineAPI) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	var body io.Reader
	if reqObj != nil {
		data, err := json.Marshal(reqObj)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s/%s", api.baseURL, route), body)
	if err != nil {
		return err
	}
	if reqObj != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if api.jwt != "" {
		req.Header.Set("Authorization", "Bearer "+api.jwt)
	}

	res, err := api.httpClient.Do(req)
	if err != nil {
		return err
	}

	// error statuses surface even when the caller does not care about the response body
	return interpretBody(res, resObj)
}

// BaseURL returns the baseURL of the API.
func (api *WalletEngineAPI) BaseURL() string {
	return api.baseURL
}
