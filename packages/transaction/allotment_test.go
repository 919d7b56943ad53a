package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountID_Base58RoundTrip(t *testing.T) {
	var accountID AccountID
	for i := range accountID {
		accountID[i] = byte(i)
	}

	restored, err := AccountIDFromBase58(accountID.Base58())
	require.NoError(t, err)
	assert.Equal(t, accountID, restored)

	_, err = AccountIDFromBase58("not-base58!")
	require.Error(t, err)
}

func TestManaAllotment_RoundTrip(t *testing.T) {
	var accountID AccountID
	accountID[0] = 0x42

	allotment := NewManaAllotment(accountID, 1337)

	restored, consumedBytes, err := ManaAllotmentFromBytes(allotment.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(allotment.Bytes()), consumedBytes)
	assert.Equal(t, allotment.AccountID, restored.AccountID)
	assert.Equal(t, allotment.Mana, restored.Mana)
}
