package jsonmodels

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/crypto/ed25519"

	"github.com/iotaledger/wallet.go/packages/transaction"
)

// region Unlock ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Unlock is the JSON model of a transaction.Unlock. Every variant carries its numeric wire tag in the "type" field.
type Unlock interface {
	// ToUnlock converts the JSON model back into a transaction.Unlock.
	ToUnlock() (transaction.Unlock, error)
}

// unlockModels maps every wire tag to the constructor of the matching variant model. Deserialization reads the tag
// first and then dispatches through this table.
var unlockModels = map[transaction.UnlockType]func() Unlock{
	transaction.SignatureUnlockType: func() Unlock { return &SignatureUnlock{} },
	transaction.ReferenceUnlockType: func() Unlock { return &ReferenceUnlock{} },
	transaction.AccountUnlockType:   func() Unlock { return &AccountUnlock{} },
	transaction.AnchorUnlockType:    func() Unlock { return &AnchorUnlock{} },
	transaction.NftUnlockType:       func() Unlock { return &NftUnlock{} },
}

// NewUnlock returns the JSON model of the given transaction.Unlock.
func NewUnlock(unlock transaction.Unlock) (Unlock, error) {
	switch unlock := unlock.(type) {
	case *transaction.SignatureUnlock:
		return &SignatureUnlock{
			Type:      uint8(transaction.SignatureUnlockType),
			Signature: NewEd25519Signature(unlock.Signature()),
		}, nil
	case *transaction.ReferenceUnlock:
		return &ReferenceUnlock{
			Type:      uint8(transaction.ReferenceUnlockType),
			Reference: unlock.ReferencedIndex(),
		}, nil
	case *transaction.AccountUnlock:
		return &AccountUnlock{
			Type:      uint8(transaction.AccountUnlockType),
			Reference: unlock.ReferencedIndex(),
		}, nil
	case *transaction.AnchorUnlock:
		return &AnchorUnlock{
			Type:      uint8(transaction.AnchorUnlockType),
			Reference: unlock.ReferencedIndex(),
		}, nil
	case *transaction.NftUnlock:
		return &NftUnlock{
			Type:      uint8(transaction.NftUnlockType),
			Reference: unlock.ReferencedIndex(),
		}, nil
	default:
		return nil, errors.Errorf("not supported unlock type: %s", unlock.Type())
	}
}

// UnlockFromJSON parses an Unlock from its JSON representation. Unknown type tags fail with a decoding error instead
// of silently falling back to a default variant.
func UnlockFromJSON(jsonBytes []byte) (transaction.Unlock, error) {
	var discriminator struct {
		Type *uint8 `json:"type"`
	}
	if err := json.Unmarshal(jsonBytes, &discriminator); err != nil {
		return nil, errors.Wrap(err, "failed to decode unlock")
	}
	if discriminator.Type == nil {
		return nil, errors.New("failed to decode unlock: missing type")
	}

	newModel, exists := unlockModels[transaction.UnlockType(*discriminator.Type)]
	if !exists {
		return nil, errors.Errorf("failed to decode unlock: unknown type %d", *discriminator.Type)
	}

	model := newModel()
	if err := json.Unmarshal(jsonBytes, model); err != nil {
		return nil, errors.Wrap(err, "failed to decode unlock")
	}

	return model.ToUnlock()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SignatureUnlock //////////////////////////////////////////////////////////////////////////////////////////////

// SignatureUnlock is the JSON model of a transaction.SignatureUnlock.
type SignatureUnlock struct {
	Type      uint8             `json:"type"`
	Signature *Ed25519Signature `json:"signature"`
}

// ToUnlock converts the JSON model back into a transaction.Unlock.
func (s *SignatureUnlock) ToUnlock() (transaction.Unlock, error) {
	if s.Signature == nil {
		return nil, errors.New("failed to decode SignatureUnlock: missing signature")
	}

	signature, err := s.Signature.ToED25519Signature()
	if err != nil {
		return nil, err
	}

	return transaction.NewSignatureUnlock(signature), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ReferenceUnlock //////////////////////////////////////////////////////////////////////////////////////////////

// ReferenceUnlock is the JSON model of a transaction.ReferenceUnlock.
type ReferenceUnlock struct {
	Type      uint8  `json:"type"`
	Reference uint16 `json:"reference"`
}

// ToUnlock converts the JSON model back into a transaction.Unlock.
func (r *ReferenceUnlock) ToUnlock() (transaction.Unlock, error) {
	return transaction.NewReferenceUnlock(r.Reference), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountUnlock ////////////////////////////////////////////////////////////////////////////////////////////////

// AccountUnlock is the JSON model of a transaction.AccountUnlock.
type AccountUnlock struct {
	Type      uint8  `json:"type"`
	Reference uint16 `json:"reference"`
}

// ToUnlock converts the JSON model back into a transaction.Unlock.
func (a *AccountUnlock) ToUnlock() (transaction.Unlock, error) {
	return transaction.NewAccountUnlock(a.Reference), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AnchorUnlock /////////////////////////////////////////////////////////////////////////////////////////////////

// AnchorUnlock is the JSON model of a transaction.AnchorUnlock.
type AnchorUnlock struct {
	Type      uint8  `json:"type"`
	Reference uint16 `json:"reference"`
}

// ToUnlock converts the JSON model back into a transaction.Unlock.
func (a *AnchorUnlock) ToUnlock() (transaction.Unlock, error) {
	return transaction.NewAnchorUnlock(a.Reference), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NftUnlock ////////////////////////////////////////////////////////////////////////////////////////////////////

// NftUnlock is the JSON model of a transaction.NftUnlock.
type NftUnlock struct {
	Type      uint8  `json:"type"`
	Reference uint16 `json:"reference"`
}

// ToUnlock converts the JSON model back into a transaction.Unlock.
func (n *NftUnlock) ToUnlock() (transaction.Unlock, error) {
	return transaction.NewNftUnlock(n.Reference), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Ed25519Signature /////////////////////////////////////////////////////////////////////////////////////////////

// Ed25519Signature is the JSON model of a transaction.ED25519Signature. The public key and the signature are hex
// encoded with a 0x prefix.
type Ed25519Signature struct {
	Type      uint8  `json:"type"`
	PublicKey string `json:"publicKey"`
	Signature string `json:"signature"`
}

// NewEd25519Signature returns the JSON model of the given transaction.ED25519Signature.
func NewEd25519Signature(signature *transaction.ED25519Signature) *Ed25519Signature {
	return &Ed25519Signature{
		Type:      uint8(transaction.ED25519SignatureType),
		PublicKey: encodeHex(signature.PublicKey.Bytes()),
		Signature: encodeHex(signature.Signature.Bytes()),
	}
}

// ToED25519Signature converts the JSON model back into a transaction.ED25519Signature.
func (e *Ed25519Signature) ToED25519Signature() (*transaction.ED25519Signature, error) {
	if e.Type != uint8(transaction.ED25519SignatureType) {
		return nil, errors.Errorf("failed to decode signature: unknown type %d", e.Type)
	}

	publicKeyBytes, err := decodeHex(e.PublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode publicKey")
	}
	publicKey, _, err := ed25519.PublicKeyFromBytes(publicKeyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode publicKey")
	}

	signatureBytes, err := decodeHex(e.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode signature")
	}
	if len(signatureBytes) != ed25519.SignatureSize {
		return nil, errors.Errorf("failed to decode signature: invalid length %d", len(signatureBytes))
	}
	var signature ed25519.Signature
	copy(signature[:], signatureBytes)

	return transaction.NewED25519Signature(publicKey, signature), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utils ////////////////////////////////////////////////////////////////////////////////////////////////////////

// encodeHex encodes the given bytes as a hex string with a 0x prefix.
func encodeHex(bytes []byte) string {
	return "0x" + hex.EncodeToString(bytes)
}

// decodeHex decodes a 0x prefixed hex string.
func decodeHex(hexString string) ([]byte, error) {
	if !strings.HasPrefix(hexString, "0x") {
		return nil, errors.Errorf("hex string %s misses 0x prefix", hexString)
	}

	decodedBytes, err := hex.DecodeString(hexString[2:])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex string %s", hexString)
	}

	return decodedBytes, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
