package jsonmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/wallet.go/packages/transaction"
)

func TestManaAllotment_JSONRoundTrip(t *testing.T) {
	var accountID transaction.AccountID
	accountID[0] = 0x42

	allotment := transaction.NewManaAllotment(accountID, 18446744073709551615)

	restored, err := NewManaAllotment(allotment).ToManaAllotment()
	require.NoError(t, err)
	assert.Equal(t, allotment.AccountID, restored.AccountID)
	assert.Equal(t, allotment.Mana, restored.Mana)
}

func TestManaAllotment_InvalidFields(t *testing.T) {
	_, err := (&ManaAllotment{AccountID: "not-hex", Mana: "1"}).ToManaAllotment()
	require.Error(t, err)

	_, err = (&ManaAllotment{AccountID: "0x" + "00", Mana: "1"}).ToManaAllotment()
	require.Error(t, err)
}
