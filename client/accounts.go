package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

const (
	routeAccountMethod = "wallet/accounts/%s/method"
)

// CallAccountMethod invokes the named account method on the engine and decodes the engine's response into res. The
// data is wrapped into the method envelope unmodified; any validation of its content happens inside the engine and
// surfaces as an error of the call.
func (api *WalletEngineAPI) CallAccountMethod(accountID string, name string, data interface{}, res interface{}) error {
	var rawData json.RawMessage
	if data != nil {
		marshaledData, err := json.Marshal(data)
		if err != nil {
			return err
		}
		rawData = marshaledData
	}

	return api.do(http.MethodPost, fmt.Sprintf(routeAccountMethod, accountID),
		&jsonmodels.AccountMethodRequest{Name: name, Data: rawData}, res)
}
