package createaliasoptions

import (
	"encoding/json"

	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

// CreateAliasOutputOption is a function that provides an option.
type CreateAliasOutputOption func(options *CreateAliasOutputOptions) error

// Address sets the Bech32 encoded address which will control the alias. If it is not set, the engine uses the first
// address of the account.
func Address(address string) CreateAliasOutputOption {
	return func(options *CreateAliasOutputOptions) error {
		options.Address = address
		return nil
	}
}

// ImmutableMetadata sets the immutable alias metadata, hex encoded bytes. The hex well-formedness is checked by the
// engine when the request is submitted.
func ImmutableMetadata(immutableMetadata string) CreateAliasOutputOption {
	return func(options *CreateAliasOutputOptions) error {
		options.ImmutableMetadata = immutableMetadata
		return nil
	}
}

// Metadata sets the alias metadata, hex encoded bytes.
func Metadata(metadata string) CreateAliasOutputOption {
	return func(options *CreateAliasOutputOptions) error {
		options.Metadata = metadata
		return nil
	}
}

// StateMetadata sets the alias state metadata, hex encoded bytes.
func StateMetadata(stateMetadata string) CreateAliasOutputOption {
	return func(options *CreateAliasOutputOptions) error {
		options.StateMetadata = stateMetadata
		return nil
	}
}

// TransactionOptions sets the engine defined transaction options which are passed through to the engine unmodified.
func TransactionOptions(transactionOptions json.RawMessage) CreateAliasOutputOption {
	return func(options *CreateAliasOutputOptions) error {
		options.TransactionOptions = transactionOptions
		return nil
	}
}

// CreateAliasOutputOptions is a struct that is used to aggregate the optional parameters provided in the
// CreateAliasOutput call.
type CreateAliasOutputOptions struct {
	Address            string
	ImmutableMetadata  string
	Metadata           string
	StateMetadata      string
	TransactionOptions json.RawMessage
}

// ToAliasOutputParams returns the JSON model of the aggregated parameters. Unset fields stay absent from the
// serialized params so the engine can apply its defaults.
func (c *CreateAliasOutputOptions) ToAliasOutputParams() *jsonmodels.AliasOutputParams {
	return &jsonmodels.AliasOutputParams{
		Address:           c.Address,
		ImmutableMetadata: c.ImmutableMetadata,
		Metadata:          c.Metadata,
		StateMetadata:     c.StateMetadata,
	}
}

// Build builds the options.
func Build(options ...CreateAliasOutputOption) (result *CreateAliasOutputOptions, err error) {
	// create options to collect the arguments provided
	result = &CreateAliasOutputOptions{}

	// apply arguments to our options
	for _, option := range options {
		if err = option(result); err != nil {
			return
		}
	}

	return
}
