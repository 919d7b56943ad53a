package wallet

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"

	"github.com/iotaledger/wallet.go/client/wallet/packages/createaliasoptions"
	"github.com/iotaledger/wallet.go/client/wallet/packages/syncoptions"
	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

// region Wallet ///////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// DefaultAccountID is the account that the wallet binds to when none was provided in the options.
	DefaultAccountID = "0"
	// DefaultMinSyncInterval is the minimum time between two syncs against the engine.
	DefaultMinSyncInterval = 5 * time.Second
)

// ErrAccountNotSynced is returned when the cached balance is requested before the account was ever synced.
var ErrAccountNotSynced = errors.New("account was not synced yet")

// Wallet binds a single account of a wallet engine and exposes its account methods.
type Wallet struct {
	connector       Connector
	accountID       string
	log             *logger.Logger
	minSyncInterval time.Duration

	syncMutex   sync.Mutex
	lastSynced  time.Time
	lastBalance *jsonmodels.AccountBalance
}

// New is the factory method of the wallet. It binds the account identified in the options to the provided connector.
func New(options ...Option) (wallet *Wallet) {
	// create wallet
	wallet = &Wallet{}

	// configure wallet
	for _, option := range options {
		option(wallet)
	}

	if wallet.accountID == "" {
		wallet.accountID = DefaultAccountID
	}

	if wallet.minSyncInterval == 0 {
		wallet.minSyncInterval = DefaultMinSyncInterval
	}

	// a wallet without a connector cannot do anything
	if wallet.connector == nil {
		panic("you need to provide a connector for your wallet")
	}

	return
}

// AccountID returns the identifier of the account this wallet is bound to.
func (wallet *Wallet) AccountID() string {
	return wallet.accountID
}

// CreateAliasOutput creates a new alias output controlled by the account. All parameters are optional and are
// aggregated through the provided options.
func (wallet *Wallet) CreateAliasOutput(options ...createaliasoptions.CreateAliasOutputOption) (result *jsonmodels.TransactionResult, err error) {
	buildOptions, err := createaliasoptions.Build(options...)
	if err != nil {
		return nil, errors.Errorf("failed to build options: %v", err)
	}

	result, err = wallet.connector.CreateAliasOutput(wallet.accountID, buildOptions.ToAliasOutputParams(), buildOptions.TransactionOptions)
	if err != nil {
		return nil, err
	}
	wallet.debugf("created alias output in transaction %s", result.TransactionID)

	return
}

// Sync syncs the account against the engine and returns the resulting balance. If the account was synced within the
// minimum sync interval the cached balance is returned instead, unless syncing is forced through the options.
func (wallet *Wallet) Sync(options ...syncoptions.SyncOption) (balance *jsonmodels.AccountBalance, err error) {
	buildOptions, err := syncoptions.Build(options...)
	if err != nil {
		return nil, errors.Errorf("failed to build options: %v", err)
	}

	wallet.syncMutex.Lock()
	defer wallet.syncMutex.Unlock()

	if !buildOptions.ForceSyncing && wallet.lastBalance != nil && time.Since(wallet.lastSynced) < wallet.minSyncInterval {
		wallet.debugf("account %s was synced within the last %s, returning cached balance", wallet.accountID, wallet.minSyncInterval)
		return wallet.lastBalance, nil
	}

	balance, err = wallet.connector.SyncAccount(wallet.accountID, buildOptions)
	if err != nil {
		return nil, err
	}
	wallet.lastSynced = time.Now()
	wallet.lastBalance = balance
	wallet.debugf("finished syncing account %s", wallet.accountID)

	return
}

// Balance returns the balance of the last sync without hitting the engine.
func (wallet *Wallet) Balance() (balance *jsonmodels.AccountBalance, err error) {
	wallet.syncMutex.Lock()
	defer wallet.syncMutex.Unlock()

	if wallet.lastBalance == nil {
		return nil, ErrAccountNotSynced
	}

	return wallet.lastBalance, nil
}

// ServerStatus retrieves the status of the connected engine.
func (wallet *Wallet) ServerStatus() (status ServerStatus, err error) {
	return wallet.connector.ServerStatus()
}

func (wallet *Wallet) debugf(template string, args ...interface{}) {
	if wallet.log != nil {
		wallet.log.Debugf(template, args...)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
