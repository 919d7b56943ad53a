package transaction

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region SignatureType ////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// ED25519SignatureType represents the type of an ED25519Signature.
	ED25519SignatureType SignatureType = iota
)

// SignatureType represents the type of a signature scheme. The engine currently only exposes ED25519.
type SignatureType uint8

// String returns a human readable representation of the SignatureType.
func (s SignatureType) String() string {
	return [...]string{
		"ED25519SignatureType",
	}[s]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ED25519Signature /////////////////////////////////////////////////////////////////////////////////////////////

// ED25519Signature represents an ED25519 signature together with the public key that produced it.
type ED25519Signature struct {
	PublicKey ed25519.PublicKey
	Signature ed25519.Signature
}

// NewED25519Signature is the constructor of an ED25519Signature.
func NewED25519Signature(publicKey ed25519.PublicKey, signature ed25519.Signature) *ED25519Signature {
	return &ED25519Signature{
		PublicKey: publicKey,
		Signature: signature,
	}
}

// ED25519SignatureFromBytes unmarshals an ED25519Signature from a sequence of bytes.
func ED25519SignatureFromBytes(bytes []byte) (signature *ED25519Signature, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if signature, err = ED25519SignatureFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ED25519Signature from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ED25519SignatureFromMarshalUtil unmarshals an ED25519Signature using a MarshalUtil (for easier unmarshaling).
func ED25519SignatureFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (signature *ED25519Signature, err error) {
	signatureType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse SignatureType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if SignatureType(signatureType) != ED25519SignatureType {
		err = xerrors.Errorf("invalid SignatureType (%X): %w", signatureType, cerrors.ErrParseBytesFailed)
		return
	}

	signature = &ED25519Signature{}
	if signature.PublicKey, err = ed25519.ParsePublicKey(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse PublicKey (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if signature.Signature, err = ed25519.ParseSignature(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Signature (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// Type returns the SignatureType of this signature.
func (e *ED25519Signature) Type() SignatureType {
	return ED25519SignatureType
}

// SignsData returns true if the signature correctly signs the given data.
func (e *ED25519Signature) SignsData(data []byte) bool {
	return e.PublicKey.VerifySignature(data, e.Signature)
}

// Bytes returns a marshaled version of this signature.
func (e *ED25519Signature) Bytes() []byte {
	return marshalutil.New(1 + ed25519.PublicKeySize + ed25519.SignatureSize).
		WriteByte(byte(ED25519SignatureType)).
		WriteBytes(e.PublicKey.Bytes()).
		WriteBytes(e.Signature.Bytes()).
		Bytes()
}

// String returns a human readable version of this signature.
func (e *ED25519Signature) String() string {
	return stringify.Struct("ED25519Signature",
		stringify.StructField("publicKey", e.PublicKey),
		stringify.StructField("signature", e.Signature),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
