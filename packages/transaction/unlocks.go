package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region Unlocks //////////////////////////////////////////////////////////////////////////////////////////////////////

// Unlocks is an ordered list of Unlocks where the Unlock at index i authorizes spending the Input at index i.
type Unlocks []Unlock

// UnlocksFromBytes unmarshals Unlocks from a sequence of bytes.
func UnlocksFromBytes(bytes []byte) (unlocks Unlocks, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if unlocks, err = UnlocksFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Unlocks from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// UnlocksFromMarshalUtil unmarshals Unlocks using a MarshalUtil (for easier unmarshaling).
func UnlocksFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unlocks Unlocks, err error) {
	unlockCount, err := marshalUtil.ReadUint16()
	if err != nil {
		err = xerrors.Errorf("failed to parse Unlock count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	unlocks = make(Unlocks, unlockCount)
	for i := uint16(0); i < unlockCount; i++ {
		if unlocks[i], err = UnlockFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse Unlock at index %d from MarshalUtil: %w", i, err)
			return
		}
	}

	return
}

// Validate checks that every reference carrying Unlock points to an Unlock strictly before its own position. The
// engine performs the authoritative semantic validation; this check only catches forward and self references before
// a request crosses the bridge.
func (u Unlocks) Validate() (err error) {
	for i, unlock := range u {
		var referencedIndex uint16
		switch typedUnlock := unlock.(type) {
		case *SignatureUnlock:
			continue
		case *ReferenceUnlock:
			referencedIndex = typedUnlock.ReferencedIndex()
		case *AccountUnlock:
			referencedIndex = typedUnlock.ReferencedIndex()
		case *AnchorUnlock:
			referencedIndex = typedUnlock.ReferencedIndex()
		case *NftUnlock:
			referencedIndex = typedUnlock.ReferencedIndex()
		default:
			return xerrors.Errorf("unsupported Unlock at index %d: %w", i, cerrors.ErrParseBytesFailed)
		}

		if int(referencedIndex) >= i {
			return xerrors.Errorf("unlock %d references non-existent unlock at index %d", i, referencedIndex)
		}
	}

	return nil
}

// Bytes returns a marshaled version of the Unlocks.
func (u Unlocks) Bytes() []byte {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint16(uint16(len(u)))
	for _, unlock := range u {
		marshalUtil.WriteBytes(unlock.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Unlocks.
func (u Unlocks) String() string {
	structBuilder := stringify.StructBuilder("Unlocks")
	for i, unlock := range u {
		structBuilder.AddField(stringify.StructField(strconv.Itoa(i), unlock))
	}

	return structBuilder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
