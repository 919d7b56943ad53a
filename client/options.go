package client

import (
	"net/http"
)

// Option is a function that configures the WalletEngineAPI.
type Option func(*WalletEngineAPI)

// WithHTTPClient sets the http.Client used to make the API requests.
func WithHTTPClient(httpClient http.Client) Option {
	return func(api *WalletEngineAPI) {
		api.httpClient = httpClient
	}
}

// WithJWT sets the JWT token that is attached to every request as a bearer authorization header.
func WithJWT(jwt string) Option {
	return func(api *WalletEngineAPI) {
		api.jwt = jwt
	}
}
