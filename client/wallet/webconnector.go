package wallet

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/wallet.go/client"
	"github.com/iotaledger/wallet.go/client/wallet/packages/syncoptions"
	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

const (
	methodCreateAliasOutput = "createAliasOutput"
	methodSyncAccount       = "syncAccount"
)

// WebConnector implements a connector that uses the web API to connect to a wallet engine to implement the required
// functions for the wallet.
type WebConnector struct {
	client *client.WalletEngineAPI
}

// NewWebConnector is the constructor for the WebConnector.
func NewWebConnector(baseURL string, setters ...client.Option) *WebConnector {
	return &WebConnector{
		client: client.NewWalletEngineAPI(baseURL, setters...),
	}
}

// ServerStatus retrieves the status of the connected engine with the info api.
func (webConnector *WebConnector) ServerStatus() (status ServerStatus, err error) {
	response, err := webConnector.client.Info()
	if err != nil {
		return
	}

	status.Version = response.Version
	status.Healthy = response.Healthy

	return
}

// CreateAliasOutput submits the createAliasOutput account method to the engine and returns the identifiers of the
// resulting transaction.
func (webConnector *WebConnector) CreateAliasOutput(accountID string, params *jsonmodels.AliasOutputParams, options json.RawMessage) (result *jsonmodels.TransactionResult, err error) {
	result = &jsonmodels.TransactionResult{}
	if err = webConnector.client.CallAccountMethod(accountID, methodCreateAliasOutput, &jsonmodels.CreateAliasOutputData{
		Params:  params,
		Options: options,
	}, result); err != nil {
		return nil, errors.Errorf("failed to call %s: %v", methodCreateAliasOutput, err)
	}

	return
}

// SyncAccount makes the engine sync the account against the ledger and returns the resulting balance.
func (webConnector *WebConnector) SyncAccount(accountID string, options *syncoptions.SyncOptions) (balance *jsonmodels.AccountBalance, err error) {
	var rawOptions json.RawMessage
	if options != nil {
		if rawOptions, err = json.Marshal(options); err != nil {
			return nil, errors.Errorf("failed to marshal sync options: %v", err)
		}
	}

	balance = &jsonmodels.AccountBalance{}
	if err = webConnector.client.CallAccountMethod(accountID, methodSyncAccount, &jsonmodels.SyncAccountData{
		Options: rawOptions,
	}, balance); err != nil {
		return nil, errors.Errorf("failed to call %s: %v", methodSyncAccount, err)
	}

	return
}

// code contract - make sure the WebConnector implements the Connector interface
var _ Connector = &WebConnector{}
