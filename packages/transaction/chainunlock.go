package transaction

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region AccountUnlock ////////////////////////////////////////////////////////////////////////////////////////////////

// AccountUnlock defines an Unlock which references a previous Unlock that unlocks the account controlling the Input.
// The previous Unlock can itself be a chain unlock, which allows recursive unlocks.
type AccountUnlock struct {
	referencedIndex uint16
}

// NewAccountUnlock is the constructor for AccountUnlocks.
func NewAccountUnlock(referencedIndex uint16) *AccountUnlock {
	return &AccountUnlock{
		referencedIndex: referencedIndex,
	}
}

// AccountUnlockFromBytes unmarshals an AccountUnlock from a sequence of bytes.
func AccountUnlockFromBytes(bytes []byte) (unlock *AccountUnlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = AccountUnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse AccountUnlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AccountUnlockFromMarshalUtil unmarshals an AccountUnlock using a MarshalUtil (for easier unmarshaling).
func AccountUnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock *AccountUnlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockType(unlockType) != AccountUnlockType {
		err = xerrors.Errorf("invalid UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	unlock = &AccountUnlock{}
	if unlock.referencedIndex, err = marshalUtil.ReadUint16(); err != nil {
		err = xerrors.Errorf("failed to parse referencedIndex (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// ReferencedIndex returns the index of the referenced Unlock.
func (a *AccountUnlock) ReferencedIndex() uint16 {
	return a.referencedIndex
}

// Type returns the UnlockType of this Unlock.
func (a *AccountUnlock) Type() UnlockType {
	return AccountUnlockType
}

// Bytes returns a marshaled version of this Unlock.
func (a *AccountUnlock) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint16Size).
		WriteByte(byte(AccountUnlockType)).
		WriteUint16(a.referencedIndex).
		Bytes()
}

// String returns a human readable version of this Unlock.
func (a *AccountUnlock) String() string {
	return stringify.Struct("AccountUnlock",
		stringify.StructField("referencedIndex", int(a.referencedIndex)),
	)
}

// code contract (make sure the type implements all required methods)
var _ Unlock = &AccountUnlock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AnchorUnlock /////////////////////////////////////////////////////////////////////////////////////////////////

// AnchorUnlock defines an Unlock which references a previous Unlock that unlocks the anchor controlling the Input.
type AnchorUnlock struct {
	referencedIndex uint16
}

// NewAnchorUnlock is the constructor for AnchorUnlocks.
func NewAnchorUnlock(referencedIndex uint16) *AnchorUnlock {
	return &AnchorUnlock{
		referencedIndex: referencedIndex,
	}
}

// AnchorUnlockFromBytes unmarshals an AnchorUnlock from a sequence of bytes.
func AnchorUnlockFromBytes(bytes []byte) (unlock *AnchorUnlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = AnchorUnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse AnchorUnlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AnchorUnlockFromMarshalUtil unmarshals an AnchorUnlock using a MarshalUtil (for easier unmarshaling).
func AnchorUnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock *AnchorUnlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockType(unlockType) != AnchorUnlockType {
		err = xerrors.Errorf("invalid UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	unlock = &AnchorUnlock{}
	if unlock.referencedIndex, err = marshalUtil.ReadUint16(); err != nil {
		err = xerrors.Errorf("failed to parse referencedIndex (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// ReferencedIndex returns the index of the referenced Unlock.
func (a *AnchorUnlock) ReferencedIndex() uint16 {
	return a.referencedIndex
}

// Type returns the UnlockType of this Unlock.
func (a *AnchorUnlock) Type() UnlockType {
	return AnchorUnlockType
}

// Bytes returns a marshaled version of this Unlock.
func (a *AnchorUnlock) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint16Size).
		WriteByte(byte(AnchorUnlockType)).
		WriteUint16(a.referencedIndex).
		Bytes()
}

// String returns a human readable version of this Unlock.
func (a *AnchorUnlock) String() string {
	return stringify.Struct("AnchorUnlock",
		stringify.StructField("referencedIndex", int(a.referencedIndex)),
	)
}

// code contract (make sure the type implements all required methods)
var _ Unlock = &AnchorUnlock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NftUnlock ////////////////////////////////////////////////////////////////////////////////////////////////////

// NftUnlock defines an Unlock which references a previous Unlock that unlocks the NFT controlling the Input.
type NftUnlock struct {
	referencedIndex uint16
}

// NewNftUnlock is the constructor for NftUnlocks.
func NewNftUnlock(referencedIndex uint16) *NftUnlock {
	return &NftUnlock{
		referencedIndex: referencedIndex,
	}
}

// NftUnlockFromBytes unmarshals an NftUnlock from a sequence of bytes.
func NftUnlockFromBytes(bytes []byte) (unlock *NftUnlock, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlock, err = NftUnlockFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse NftUnlock from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// NftUnlockFromMarshalUtil unmarshals an NftUnlock using a MarshalUtil (for easier unmarshaling).
func NftUnlockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlock *NftUnlock, err error) {
	unlockType, err := marshalUtil.ReadByte()
	if err != nil {
		err = xerrors.Errorf("failed to parse UnlockType (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if UnlockType(unlockType) != NftUnlockType {
		err = xerrors.Errorf("invalid UnlockType (%X): %w", unlockType, cerrors.ErrParseBytesFailed)
		return
	}

	unlock = &NftUnlock{}
	if unlock.referencedIndex, err = marshalUtil.ReadUint16(); err != nil {
		err = xerrors.Errorf("failed to parse referencedIndex (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// ReferencedIndex returns the index of the referenced Unlock.
func (n *NftUnlock) ReferencedIndex() uint16 {
	return n.referencedIndex
}

// Type returns the UnlockType of this Unlock.
func (n *NftUnlock) Type() UnlockType {
	return NftUnlockType
}

// Bytes returns a marshaled version of this Unlock.
func (n *NftUnlock) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint16Size).
		WriteByte(byte(NftUnlockType)).
		WriteUint16(n.referencedIndex).
		Bytes()
}

// String returns a human readable version of this Unlock.
func (n *NftUnlock) String() string {
	return stringify.Struct("NftUnlock",
		stringify.StructField("referencedIndex", int(n.referencedIndex)),
	)
}

// code contract (make sure the type implements all required methods)
var _ Unlock = &NftUnlock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
