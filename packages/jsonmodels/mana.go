package jsonmodels

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/wallet.go/packages/transaction"
)

// ManaAllotment is the JSON model of a transaction.ManaAllotment. The mana amount is rendered as a decimal string
// because it can exceed the safe integer range of JSON consumers.
type ManaAllotment struct {
	AccountID string `json:"accountId"`
	Mana      string `json:"mana"`
}

// NewManaAllotment returns the JSON model of the given transaction.ManaAllotment.
func NewManaAllotment(allotment *transaction.ManaAllotment) *ManaAllotment {
	return &ManaAllotment{
		AccountID: encodeHex(allotment.AccountID.Bytes()),
		Mana:      strconv.FormatUint(allotment.Mana, 10),
	}
}

// ToManaAllotment converts the JSON model back into a transaction.ManaAllotment.
func (m *ManaAllotment) ToManaAllotment() (*transaction.ManaAllotment, error) {
	accountIDBytes, err := decodeHex(m.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode accountId")
	}
	accountID, _, err := transaction.AccountIDFromBytes(accountIDBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode accountId")
	}

	mana, err := strconv.ParseUint(m.Mana, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode mana")
	}

	return transaction.NewManaAllotment(accountID, mana), nil
}
