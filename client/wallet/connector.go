package wallet

import (
	"encoding/json"

	"github.com/iotaledger/wallet.go/client/wallet/packages/syncoptions"
	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

// Connector represents an interface that defines how the wallet interacts with the engine. A wallet can either be
// attached to an in-process engine or it can connect remotely using the web API.
type Connector interface {
	CreateAliasOutput(accountID string, params *jsonmodels.AliasOutputParams, options json.RawMessage) (result *jsonmodels.TransactionResult, err error)
	SyncAccount(accountID string, options *syncoptions.SyncOptions) (balance *jsonmodels.AccountBalance, err error)
	ServerStatus() (status ServerStatus, err error)
}

// ServerStatus holds the version and health information of the connected engine.
type ServerStatus struct {
	Version string
	Healthy bool
}
