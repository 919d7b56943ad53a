package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"
)

// region AccountID ////////////////////////////////////////////////////////////////////////////////////////////////////

// AccountIDLength contains the amount of bytes that a marshaled version of the AccountID contains.
const AccountIDLength = 32

// AccountID is the unique identifier of an account known to the engine.
type AccountID [AccountIDLength]byte

// AccountIDFromBytes unmarshals an AccountID from a sequence of bytes.
func AccountIDFromBytes(bytes []byte) (accountID AccountID, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if accountID, err = AccountIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse AccountID from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AccountIDFromBase58 creates an AccountID from a base58 encoded string.
func AccountIDFromBase58(base58String string) (accountID AccountID, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = xerrors.Errorf("error while decoding base58 encoded AccountID (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if accountID, _, err = AccountIDFromBytes(decodedBytes); err != nil {
		err = xerrors.Errorf("failed to parse AccountID from bytes: %w", err)
		return
	}

	return
}

// AccountIDFromMarshalUtil unmarshals an AccountID using a MarshalUtil (for easier unmarshaling).
func AccountIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (accountID AccountID, err error) {
	accountIDBytes, err := marshalUtil.ReadBytes(AccountIDLength)
	if err != nil {
		err = xerrors.Errorf("failed to parse AccountID (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(accountID[:], accountIDBytes)

	return
}

// Bytes returns a marshaled version of the AccountID.
func (a AccountID) Bytes() []byte {
	return a[:]
}

// Base58 returns a base58 encoded version of the AccountID.
func (a AccountID) Base58() string {
	return base58.Encode(a[:])
}

// String returns a human readable version of the AccountID.
func (a AccountID) String() string {
	return "AccountID(" + a.Base58() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ManaAllotment ////////////////////////////////////////////////////////////////////////////////////////////////

// ManaAllotment represents an amount of mana that is credited to an account upon commitment of the slot in which the
// containing transaction was issued.
type ManaAllotment struct {
	AccountID AccountID
	Mana      uint64
}

// NewManaAllotment is the constructor of a ManaAllotment.
func NewManaAllotment(accountID AccountID, mana uint64) *ManaAllotment {
	return &ManaAllotment{
		AccountID: accountID,
		Mana:      mana,
	}
}

// ManaAllotmentFromBytes unmarshals a ManaAllotment from a sequence of bytes.
func ManaAllotmentFromBytes(bytes []byte) (allotment *ManaAllotment, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if allotment, err = ManaAllotmentFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse ManaAllotment from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ManaAllotmentFromMarshalUtil unmarshals a ManaAllotment using a MarshalUtil (for easier unmarshaling).
func ManaAllotmentFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (allotment *ManaAllotment, err error) {
	allotment = &ManaAllotment{}
	if allotment.AccountID, err = AccountIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse AccountID from MarshalUtil: %w", err)
		return
	}
	if allotment.Mana, err = marshalUtil.ReadUint64(); err != nil {
		err = xerrors.Errorf("failed to parse Mana (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	return
}

// Bytes returns a marshaled version of the ManaAllotment.
func (m *ManaAllotment) Bytes() []byte {
	return marshalutil.New(AccountIDLength + marshalutil.Uint64Size).
		WriteBytes(m.AccountID.Bytes()).
		WriteUint64(m.Mana).
		Bytes()
}

// String returns a human readable version of the ManaAllotment.
func (m *ManaAllotment) String() string {
	return stringify.Struct("ManaAllotment",
		stringify.StructField("accountID", m.AccountID),
		stringify.StructField("mana", strconv.FormatUint(m.Mana, 10)),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
