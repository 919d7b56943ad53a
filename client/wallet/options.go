package wallet

import (
	"time"

	"github.com/iotaledger/hive.go/logger"
)

// Option represents an optional parameter for the New method.
type Option func(*Wallet)

// GenericConnector is an option that allows us to provide the connector which the wallet uses to talk to the engine.
func GenericConnector(connector Connector) Option {
	return func(wallet *Wallet) {
		wallet.connector = connector
	}
}

// WebAPI is an option that attaches the wallet to the engine's web API at the given base url.
func WebAPI(baseURL string) Option {
	return func(wallet *Wallet) {
		wallet.connector = NewWebConnector(baseURL)
	}
}

// AccountID is an option that binds the wallet to the account with the given identifier.
func AccountID(accountID string) Option {
	return func(wallet *Wallet) {
		wallet.accountID = accountID
	}
}

// Logger is an option that provides the logger the wallet writes its debug messages to.
func Logger(log *logger.Logger) Option {
	return func(wallet *Wallet) {
		wallet.log = log
	}
}

// MinSyncInterval is an option that overrides the minimum time between two syncs against the engine.
func MinSyncInterval(interval time.Duration) Option {
	return func(wallet *Wallet) {
		wallet.minSyncInterval = interval
	}
}
