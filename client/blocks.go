package client

import (
	"fmt"
	"net/http"

	"github.com/iotaledger/wallet.go/packages/jsonmodels"
)

const (
	routeBlockMetadata = "blocks/%s/metadata"
	routeBlockChildren = "blocks/%s/children"
)

// GetBlockMetadata gets the metadata of a block.
func (api *WalletEngineAPI) GetBlockMetadata(blockID string) (*jsonmodels.BlockMetadata, error) {
	res := &jsonmodels.BlockMetadata{}
	if err := api.do(http.MethodGet, fmt.Sprintf(routeBlockMetadata, blockID), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// GetBlockChildren gets the children of a block.
func (api *WalletEngineAPI) GetBlockChildren(blockID string) (*jsonmodels.BlockChildrenResponse, error) {
	res := &jsonmodels.BlockChildrenResponse{}
	if err := api.do(http.MethodGet, fmt.Sprintf(routeBlockChildren, blockID), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}
