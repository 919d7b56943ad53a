package burnoptions

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Burn aggregates the assets that a transaction is allowed to destroy instead of transferring them. Its methods
// return a new value so burns can be assembled through chaining.
type Burn struct {
	Aliases      []string          `json:"aliases,omitempty"`
	Nfts         []string          `json:"nfts,omitempty"`
	Foundries    []string          `json:"foundries,omitempty"`
	NativeTokens map[string]string `json:"nativeTokens,omitempty"`
}

// NewBurn creates an empty Burn.
func NewBurn() Burn {
	return Burn{}
}

// AddAlias marks the alias with the given hex encoded ID to be destroyed.
func (b Burn) AddAlias(aliasID string) Burn {
	b.Aliases = appendCopy(b.Aliases, aliasID)
	return b
}

// AddNft marks the NFT with the given hex encoded ID to be destroyed.
func (b Burn) AddNft(nftID string) Burn {
	b.Nfts = appendCopy(b.Nfts, nftID)
	return b
}

// AddFoundry marks the foundry with the given hex encoded ID to be destroyed.
func (b Burn) AddFoundry(foundryID string) Burn {
	b.Foundries = appendCopy(b.Foundries, foundryID)
	return b
}

// AddNativeToken marks the given decimal amount of the native token to be burned.
func (b Burn) AddNativeToken(tokenID string, amount string) Burn {
	nativeTokens := make(map[string]string, len(b.NativeTokens)+1)
	for id, tokenAmount := range b.NativeTokens {
		nativeTokens[id] = tokenAmount
	}
	nativeTokens[tokenID] = amount
	b.NativeTokens = nativeTokens

	return b
}

// appendCopy appends to a copy of the given slice so that the returned Burn does not share backing storage with the
// Burn it was derived from.
func appendCopy(ids []string, id string) []string {
	return append(append(make([]string, 0, len(ids)+1), ids...), id)
}

// ToTransactionOptions renders the burn into the transaction options envelope understood by the engine.
func (b Burn) ToTransactionOptions() (json.RawMessage, error) {
	transactionOptions, err := json.Marshal(map[string]Burn{"burn": b})
	if err != nil {
		return nil, errors.Errorf("failed to marshal burn: %v", err)
	}

	return transactionOptions, nil
}
