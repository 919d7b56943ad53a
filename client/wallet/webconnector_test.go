package wallet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/wallet.go/client/wallet/packages/createaliasoptions"
	"github.com/iotaledger/wallet.go/client/wallet/packages/syncoptions"
	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

func TestWebConnector_CreateAliasOutput(t *testing.T) {
	var request jsonmodels.AccountMethodRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/accounts/7/method", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		require.NoError(t, json.NewEncoder(w).Encode(&jsonmodels.TransactionResult{TransactionID: "0xbeef", BlockID: "0xdead"}))
	}))
	defer server.Close()

	w := New(GenericConnector(NewWebConnector(server.URL)), AccountID("7"))

	result, err := w.CreateAliasOutput(createaliasoptions.Address("rms1qexample"))
	require.NoError(t, err)
	assert.Equal(t, "0xbeef", result.TransactionID)
	assert.Equal(t, "0xdead", result.BlockID)

	assert.Equal(t, "createAliasOutput", request.Name)
	assert.JSONEq(t, `{"params":{"address":"rms1qexample"}}`, string(request.Data))
}

func TestWebConnector_SyncAccount(t *testing.T) {
	var request jsonmodels.AccountMethodRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		require.NoError(t, json.NewEncoder(w).Encode(&jsonmodels.AccountBalance{Total: "100", Available: "90"}))
	}))
	defer server.Close()

	w := New(GenericConnector(NewWebConnector(server.URL)))

	balance, err := w.Sync(syncoptions.AddressStartIndex(3), syncoptions.ForceSyncing(true))
	require.NoError(t, err)
	assert.Equal(t, "100", balance.Total)

	assert.Equal(t, "syncAccount", request.Name)
	assert.JSONEq(t, `{"options":{"addressStartIndex":3,"forceSyncing":true}}`, string(request.Data))
}

func TestWebConnector_ServerStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/info", r.URL.Path)

		require.NoError(t, json.NewEncoder(w).Encode(&jsonmodels.InfoResponse{Version: "1.0.0", Healthy: true}))
	}))
	defer server.Close()

	status, err := NewWebConnector(server.URL).ServerStatus()
	require.NoError(t, err)
	assert.Equal(t, ServerStatus{Version: "1.0.0", Healthy: true}, status)
}
