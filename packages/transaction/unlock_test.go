package transaction

import (
	"testing"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockType_WireTags(t *testing.T) {
	// the numeric tags are part of the wire format and interoperate with existing transaction data
	assert.EqualValues(t, 0, SignatureUnlockType)
	assert.EqualValues(t, 1, ReferenceUnlockType)
	assert.EqualValues(t, 2, AccountUnlockType)
	assert.EqualValues(t, 3, AnchorUnlockType)
	assert.EqualValues(t, 4, NftUnlockType)
}

func TestUnlockFromBytes_RoundTrip(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signature := privateKey.Sign([]byte("TEST DATA TO SIGN"))

	unlocks := Unlocks{
		NewSignatureUnlock(NewED25519Signature(publicKey, signature)),
		NewReferenceUnlock(0),
		NewAccountUnlock(1),
		NewAnchorUnlock(2),
		NewNftUnlock(3),
	}

	for _, unlock := range unlocks {
		restored, consumedBytes, err := UnlockFromBytes(unlock.Bytes())
		require.NoError(t, err)
		assert.Equal(t, len(unlock.Bytes()), consumedBytes)
		assert.Equal(t, unlock.Type(), restored.Type())
		assert.Equal(t, unlock.Bytes(), restored.Bytes())
	}
}

func TestUnlockFromBytes_UnknownType(t *testing.T) {
	_, _, err := UnlockFromBytes([]byte{0xff, 0x00, 0x00})
	require.Error(t, err)
}

func TestSignatureUnlock_SignsData(t *testing.T) {
	dataToSign := []byte("TEST DATA TO SIGN")

	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)

	unlock := NewSignatureUnlock(NewED25519Signature(publicKey, privateKey.Sign(dataToSign)))
	assert.True(t, unlock.SignsData(dataToSign))
	assert.False(t, unlock.SignsData([]byte("OTHER DATA")))
}

func TestUnlocks_RoundTrip(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signature := privateKey.Sign([]byte("TEST DATA TO SIGN"))

	unlocks := Unlocks{
		NewSignatureUnlock(NewED25519Signature(publicKey, signature)),
		NewReferenceUnlock(0),
		NewNftUnlock(0),
	}

	restored, consumedBytes, err := UnlocksFromBytes(unlocks.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(unlocks.Bytes()), consumedBytes)
	assert.Equal(t, unlocks.Bytes(), restored.Bytes())
	require.Len(t, restored, len(unlocks))
}

func TestUnlocks_Validate(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signatureUnlock := NewSignatureUnlock(NewED25519Signature(publicKey, privateKey.Sign([]byte("TEST DATA TO SIGN"))))

	// references to earlier unlocks are fine
	assert.NoError(t, Unlocks{signatureUnlock, NewReferenceUnlock(0), NewAccountUnlock(1)}.Validate())

	// self reference
	assert.Error(t, Unlocks{signatureUnlock, NewReferenceUnlock(1)}.Validate())

	// forward reference
	assert.Error(t, Unlocks{signatureUnlock, NewAnchorUnlock(2), NewReferenceUnlock(0)}.Validate())

	// reference at index 0 has nothing to point at
	assert.Error(t, Unlocks{NewReferenceUnlock(0)}.Validate())
}

func TestED25519Signature_RoundTrip(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signature := NewED25519Signature(publicKey, privateKey.Sign([]byte("TEST DATA TO SIGN")))

	restored, consumedBytes, err := ED25519SignatureFromBytes(signature.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(signature.Bytes()), consumedBytes)
	assert.Equal(t, signature.PublicKey, restored.PublicKey)
	assert.Equal(t, signature.Signature, restored.Signature)
}
