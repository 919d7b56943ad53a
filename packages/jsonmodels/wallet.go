package jsonmodels

import (
	"encoding/json"
)

// region AccountMethodRequest /////////////////////////////////////////////////////////////////////////////////////////

// AccountMethodRequest is the envelope for account method calls that are sent across the bridge to the engine. The
// engine dispatches on the method name and interprets the data according to it.
type AccountMethodRequest struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CreateAliasOutputData is the data of a createAliasOutput account method call. Options carry the engine defined
// transaction options and are passed through unmodified.
type CreateAliasOutputData struct {
	Params  *AliasOutputParams `json:"params,omitempty"`
	Options json.RawMessage    `json:"options,omitempty"`
}

// AliasOutputParams are the parameters of a createAliasOutput account method call. All fields are optional: the hex
// and Bech32 well-formedness of the values is checked by the engine, and an absent address makes the engine fall back
// to the first address of the account.
type AliasOutputParams struct {
	Address           string `json:"address,omitempty"`
	ImmutableMetadata string `json:"immutableMetadata,omitempty"`
	Metadata          string `json:"metadata,omitempty"`
	StateMetadata     string `json:"stateMetadata,omitempty"`
}

// SyncAccountData is the data of a syncAccount account method call.
type SyncAccountData struct {
	Options json.RawMessage `json:"options,omitempty"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region responses ////////////////////////////////////////////////////////////////////////////////////////////////////

// TransactionResult is the engine's response to account method calls that issue a transaction.
type TransactionResult struct {
	TransactionID string `json:"transactionId"`
	BlockID       string `json:"blockId,omitempty"`
}

// AccountBalance is the engine's response to a syncAccount account method call. Amounts are base token amounts
// rendered as decimal strings.
type AccountBalance struct {
	Total     string   `json:"total"`
	Available string   `json:"available"`
	Aliases   []string `json:"aliases,omitempty"`
	Nfts      []string `json:"nfts,omitempty"`
	Foundries []string `json:"foundries,omitempty"`
}

// InfoResponse is the response of GET info.
type InfoResponse struct {
	Version string `json:"version"`
	Healthy bool   `json:"healthy"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
