package jsonmodels

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/wallet.go/packages/transaction"
)

func TestUnlock_JSONRoundTrip(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signature := privateKey.Sign([]byte("TEST DATA TO SIGN"))

	unlocks := []transaction.Unlock{
		transaction.NewSignatureUnlock(transaction.NewED25519Signature(publicKey, signature)),
		transaction.NewReferenceUnlock(0),
		transaction.NewAccountUnlock(1),
		transaction.NewAnchorUnlock(2),
		transaction.NewNftUnlock(3),
	}

	for _, unlock := range unlocks {
		model, err := NewUnlock(unlock)
		require.NoError(t, err)

		jsonBytes, err := json.Marshal(model)
		require.NoError(t, err)

		restored, err := UnlockFromJSON(jsonBytes)
		require.NoError(t, err)
		assert.Equal(t, unlock.Type(), restored.Type())
		assert.Equal(t, unlock.Bytes(), restored.Bytes())
	}
}

func TestUnlockFromJSON_UnknownType(t *testing.T) {
	_, err := UnlockFromJSON([]byte(`{"type":5,"reference":0}`))
	require.Error(t, err)

	_, err = UnlockFromJSON([]byte(`{"type":255}`))
	require.Error(t, err)

	_, err = UnlockFromJSON([]byte(`{"reference":3}`))
	require.Error(t, err)
}

func TestSignatureUnlock_JSONShape(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey()
	require.NoError(t, err)
	signature := privateKey.Sign([]byte("TEST DATA TO SIGN"))

	model, err := NewUnlock(transaction.NewSignatureUnlock(transaction.NewED25519Signature(publicKey, signature)))
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(model)
	require.NoError(t, err)

	var decoded struct {
		Type      uint8 `json:"type"`
		Signature struct {
			Type      uint8  `json:"type"`
			PublicKey string `json:"publicKey"`
			Signature string `json:"signature"`
		} `json:"signature"`
	}
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))

	assert.EqualValues(t, 0, decoded.Type)
	assert.EqualValues(t, 0, decoded.Signature.Type)
	assert.Equal(t, encodeHex(publicKey.Bytes()), decoded.Signature.PublicKey)
	assert.Equal(t, encodeHex(signature.Bytes()), decoded.Signature.Signature)
}

func TestReferenceUnlock_JSONShape(t *testing.T) {
	model, err := NewUnlock(transaction.NewReferenceUnlock(3))
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(model)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":1,"reference":3}`, string(jsonBytes))
}

func TestChainUnlocks_JSONShape(t *testing.T) {
	for expectedType, unlock := range map[uint8]transaction.Unlock{
		2: transaction.NewAccountUnlock(7),
		3: transaction.NewAnchorUnlock(7),
		4: transaction.NewNftUnlock(7),
	} {
		model, err := NewUnlock(unlock)
		require.NoError(t, err)

		jsonBytes, err := json.Marshal(model)
		require.NoError(t, err)
		assert.JSONEq(t, fmt.Sprintf(`{"type":%d,"reference":7}`, expectedType), string(jsonBytes))
	}
}

func TestEd25519Signature_InvalidHex(t *testing.T) {
	model := &Ed25519Signature{
		Type:      0,
		PublicKey: "deadbeef",
		Signature: "0x00",
	}
	_, err := model.ToED25519Signature()
	require.Error(t, err)
}
