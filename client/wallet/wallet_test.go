package wallet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iotaledger/hive.go/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/wallet.go/client/wallet/packages/burnoptions"
	"github.com/iotaledger/wallet.go/client/wallet/packages/createaliasoptions"
	"github.com/iotaledger/wallet.go/client/wallet/packages/syncoptions"
	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

// mockConnector records the requests made by the wallet so the tests can inspect them.
type mockConnector struct {
	createAliasCalls []createAliasCall
	syncCalls        int
	syncBalance      *jsonmodels.AccountBalance
}

type createAliasCall struct {
	accountID string
	params    *jsonmodels.AliasOutputParams
	options   json.RawMessage
}

func (connector *mockConnector) CreateAliasOutput(accountID string, params *jsonmodels.AliasOutputParams, options json.RawMessage) (*jsonmodels.TransactionResult, error) {
	connector.createAliasCalls = append(connector.createAliasCalls, createAliasCall{accountID, params, options})

	return &jsonmodels.TransactionResult{TransactionID: "0xbeef", BlockID: "0xdead"}, nil
}

func (connector *mockConnector) SyncAccount(accountID string, options *syncoptions.SyncOptions) (*jsonmodels.AccountBalance, error) {
	connector.syncCalls++

	return connector.syncBalance, nil
}

func (connector *mockConnector) ServerStatus() (ServerStatus, error) {
	return ServerStatus{Version: "1.0.0", Healthy: true}, nil
}

func TestNew_PanicsWithoutConnector(t *testing.T) {
	assert.Panics(t, func() {
		New(AccountID("0"))
	})
}

func TestWallet_CreateAliasOutput(t *testing.T) {
	connector := &mockConnector{}
	w := New(GenericConnector(connector), AccountID("42"), Logger(logger.NewExampleLogger("wallet")))

	result, err := w.CreateAliasOutput(
		createaliasoptions.ImmutableMetadata("0xdeadbeef"),
		createaliasoptions.Metadata("0x01"),
	)
	require.NoError(t, err)
	assert.Equal(t, "0xbeef", result.TransactionID)

	require.Len(t, connector.createAliasCalls, 1)
	call := connector.createAliasCalls[0]
	assert.Equal(t, "42", call.accountID)
	assert.Equal(t, "0xdeadbeef", call.params.ImmutableMetadata)
	assert.Equal(t, "0x01", call.params.Metadata)

	// an unset address has to stay absent from the serialized params
	marshaledParams, err := json.Marshal(call.params)
	require.NoError(t, err)
	assert.NotContains(t, string(marshaledParams), "address")
}

func TestWallet_CreateAliasOutput_LastOptionWins(t *testing.T) {
	connector := &mockConnector{}
	w := New(GenericConnector(connector))

	_, err := w.CreateAliasOutput(
		createaliasoptions.Address("rms1qfirst"),
		createaliasoptions.Address("rms1qsecond"),
	)
	require.NoError(t, err)

	require.Len(t, connector.createAliasCalls, 1)
	assert.Equal(t, "rms1qsecond", connector.createAliasCalls[0].params.Address)
}

func TestWallet_CreateAliasOutput_WithBurn(t *testing.T) {
	connector := &mockConnector{}
	w := New(GenericConnector(connector))

	transactionOptions, err := burnoptions.NewBurn().AddAlias("0xaa").AddNativeToken("0x08", "100").ToTransactionOptions()
	require.NoError(t, err)

	_, err = w.CreateAliasOutput(createaliasoptions.TransactionOptions(transactionOptions))
	require.NoError(t, err)

	require.Len(t, connector.createAliasCalls, 1)
	assert.JSONEq(t, `{"burn":{"aliases":["0xaa"],"nativeTokens":{"0x08":"100"}}}`, string(connector.createAliasCalls[0].options))
}

func TestWallet_Sync_ReturnsCachedBalanceWithinInterval(t *testing.T) {
	connector := &mockConnector{syncBalance: &jsonmodels.AccountBalance{Total: "100", Available: "90"}}
	w := New(GenericConnector(connector), MinSyncInterval(time.Hour))

	balance, err := w.Sync()
	require.NoError(t, err)
	assert.Equal(t, "100", balance.Total)
	assert.Equal(t, 1, connector.syncCalls)

	// second sync within the interval must not hit the engine
	_, err = w.Sync()
	require.NoError(t, err)
	assert.Equal(t, 1, connector.syncCalls)

	// forced syncing bypasses the interval
	_, err = w.Sync(syncoptions.ForceSyncing(true))
	require.NoError(t, err)
	assert.Equal(t, 2, connector.syncCalls)
}

func TestWallet_Balance(t *testing.T) {
	connector := &mockConnector{syncBalance: &jsonmodels.AccountBalance{Total: "100"}}
	w := New(GenericConnector(connector))

	_, err := w.Balance()
	assert.ErrorIs(t, err, ErrAccountNotSynced)

	_, err = w.Sync()
	require.NoError(t, err)

	balance, err := w.Balance()
	require.NoError(t, err)
	assert.Equal(t, "100", balance.Total)
}

func TestWallet_ServerStatus(t *testing.T) {
	w := New(GenericConnector(&mockConnector{}))

	status, err := w.ServerStatus()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", status.Version)
	assert.True(t, status.Healthy)
}
