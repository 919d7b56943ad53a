package syncoptions

// SyncOption is a function that provides an option.
type SyncOption func(options *SyncOptions) error

// Addresses restricts the sync to the given Bech32 encoded addresses instead of all addresses of the account.
func Addresses(addresses ...string) SyncOption {
	return func(options *SyncOptions) error {
		options.Addresses = addresses
		return nil
	}
}

// AddressStartIndex sets the address index from which to start syncing.
func AddressStartIndex(addressStartIndex uint32) SyncOption {
	return func(options *SyncOptions) error {
		options.AddressStartIndex = addressStartIndex
		return nil
	}
}

// ForceSyncing bypasses the minimum sync interval and syncs against the engine even if the account was synced
// recently.
func ForceSyncing(forceSyncing bool) SyncOption {
	return func(options *SyncOptions) error {
		options.ForceSyncing = forceSyncing
		return nil
	}
}

// SyncIncomingTransactions makes the engine fetch the incoming transactions of the synced outputs as well.
func SyncIncomingTransactions(syncIncomingTransactions bool) SyncOption {
	return func(options *SyncOptions) error {
		options.SyncIncomingTransactions = syncIncomingTransactions
		return nil
	}
}

// SyncOptions is a struct that is used to aggregate the optional parameters provided in the Sync call. It is
// serialized as-is and passed through to the engine.
type SyncOptions struct {
	Addresses                []string `json:"addresses,omitempty"`
	AddressStartIndex        uint32   `json:"addressStartIndex,omitempty"`
	ForceSyncing             bool     `json:"forceSyncing,omitempty"`
	SyncIncomingTransactions bool     `json:"syncIncomingTransactions,omitempty"`
}

// Build builds the options.
func Build(options ...SyncOption) (result *SyncOptions, err error) {
	// create options to collect the arguments provided
	result = &SyncOptions{}

	// apply arguments to our options
	for _, option := range options {
		if err = option(result); err != nil {
			return
		}
	}

	return
}
