package transaction

import (
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region UnlockType ///////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// SignatureUnlockType represents the type of a SignatureUnlock.
	SignatureUnlockType UnlockType = iota

	// ReferenceUnlockType represents the type of a ReferenceUnlock.
	ReferenceUnlockType

	// AccountUnlockType represents the type of an AccountUnlock.
	AccountUnlockType

	// AnchorUnlockType represents the type of an AnchorUnlock.
	AnchorUnlockType

	// NftUnlockType represents the type of an NftUnlock.
	NftUnlockType
)

// UnlockType represents the type of an Unlock. Different types of Unlocks authorize spending different kinds of
// Outputs. The numeric values are fixed by the wire format and must never change.
type UnlockType uint8

// String returns a human readable representation of the UnlockType.
func (u UnlockType) String() string {
	return [...]string{
		"SignatureUnlockType",
		"ReferenceUnlockType",
		"AccountUnlockType",
		"AnchorUnlockType",
		"NftUnlockType",
	}[u]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Unlock ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Unlock represents the interface to generically address the different kinds of Unlocks that authorize spending the
// Inputs of a Transaction.
type Unlock interface {
	// Type returns the UnlockType of this Unlock.
	Type() UnlockType

	// Bytes returns a marshaled version of this Unlock.
	Bytes() []byte

	// String returns a human readable version of this Unlock.
	String() string
}

// UnlockFromBytes unmarshals an Unlock from a sequence of bytes.
func UnlockFromBytes(bytes []byte) (unlock Unlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = UnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Unlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// UnlockFromMarshalUtil unmarshals an Unlock using a MarshalUtil (for easier unmarshaling).
func UnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock Unlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	marshalUtil.ReadSeek(-1)

	switch UnlockType(unlockType) {
	case SignatureUnlockType:
		if unlock, err = SignatureUnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse SignatureUnlock from MarshalUtil: %w", err)
			return
		}
	case ReferenceUnlockType:
		if unlock, err = ReferenceUnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse ReferenceUnlock from MarshalUtil: %w", err)
			return
		}
	case AccountUnlockType:
		if unlock, err = AccountUnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse AccountUnlock from MarshalUtil: %w", err)
			return
		}
	case AnchorUnlockType:
		if unlock, err = AnchorUnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse AnchorUnlock from MarshalUtil: %w", err)
			return
		}
	case NftUnlockType:
		if unlock, err = NftUnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse NftUnlock from MarshalUtil: %w", err)
			return
		}
	default:
		err = xerrors.Errorf("unsupported UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SignatureUnlock //////////////////////////////////////////////////////////////////////////////////////////////

// SignatureUnlock represents an Unlock that contains an ED25519Signature unlocking the Input at the same index.
type SignatureUnlock struct {
	signature *ED25519Signature
}

// NewSignatureUnlock is the constructor for SignatureUnlock objects.
func NewSignatureUnlock(signature *ED25519Signature) *SignatureUnlock {
	return &SignatureUnlock{
		signature: signature,
	}
}

// SignatureUnlockFromBytes unmarshals a SignatureUnlock from a sequence of bytes.
func SignatureUnlockFromBytes(bytes []byte) (unlock *SignatureUnlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = SignatureUnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse SignatureUnlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SignatureUnlockFromMarshalUtil unmarshals a SignatureUnlock using a MarshalUtil (for easier unmarshaling).
func SignatureUnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock *SignatureUnlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockType(unlockType) != SignatureUnlockType {
		err = xerrors.Errorf("invalid UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	unlock = &SignatureUnlock{}
	if unlock.signature, err = ED25519SignatureFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ED25519Signature from MarshalUtil: %w", err)
		return
	}
	return
}

// Signature returns the ED25519Signature that is contained in this Unlock.
func (s *SignatureUnlock) Signature() *ED25519Signature {
	return s.signature
}

// SignsData returns true if the contained signature correctly signs the given data.
func (s *SignatureUnlock) SignsData(data []byte) bool {
	return s.signature.SignsData(data)
}

// Type returns the UnlockType of this Unlock.
func (s *SignatureUnlock) Type() UnlockType {
	return SignatureUnlockType
}

// Bytes returns a marshaled version of this Unlock.
func (s *SignatureUnlock) Bytes() []byte {
	return byteutils.ConcatBytes([]byte{byte(SignatureUnlockType)}, s.signature.Bytes())
}

// String returns a human readable version of this Unlock.
func (s *SignatureUnlock) String() string {
	return stringify.Struct("SignatureUnlock",
		stringify.StructField("signature", s.signature),
	)
}

// code contract (make sure the type implements all required methods)
var _ Unlock = &SignatureUnlock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ReferenceUnlock //////////////////////////////////////////////////////////////////////////////////////////////

// ReferenceUnlock defines an Unlock which references a previous SignatureUnlock that does the actual unlocking.
type ReferenceUnlock struct {
	referencedIndex uint16
}

// NewReferenceUnlock is the constructor for ReferenceUnlocks.
func NewReferenceUnlock(referencedIndex uint16) *ReferenceUnlock {
	return &ReferenceUnlock{
		referencedIndex: referencedIndex,
	}
}

// ReferenceUnlockFromBytes unmarshals a ReferenceUnlock from a sequence of bytes.
func ReferenceUnlockFromBytes(bytes []byte) (unlock *ReferenceUnlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = ReferenceUnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ReferenceUnlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ReferenceUnlockFromMarshalUtil unmarshals a ReferenceUnlock using a MarshalUtil (for easier unmarshaling).
func ReferenceUnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock *ReferenceUnlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockType(unlockType) != ReferenceUnlockType {
		err = xerrors.Errorf("invalid UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	unlock = &ReferenceUnlock{}
	if unlock.referencedIndex, err = marshalUtil.ReadUint16(); err != nil {
		err = xerrors.Errorf("failed to parse referencedIndex (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// ReferencedIndex returns the index of the referenced Unlock.
func (r *ReferenceUnlock) ReferencedIndex() uint16 {
	return r.referencedIndex
}

// Type returns the UnlockType of this Unlock.
func (r *ReferenceUnlock) Type() UnlockType {
	return ReferenceUnlockType
}

// Bytes returns a marshaled version of this Unlock.
func (r *ReferenceUnlock) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint16Size).
		WriteByte(byte(ReferenceUnlockType)).
		WriteUint16(r.referencedIndex).
		Bytes()
}

// String returns a human readable version of this Unlock.
func (r *ReferenceUnlock) String() string {
	return stringify.Struct("ReferenceUnlock",
		stringify.StructField("referencedIndex", int(r.referencedIndex)),
	)
}

// code contract (make sure the type implements all required methods)
var _ Unlock = &ReferenceUnlock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
