package jsonmodels

// region BlockMetadata ////////////////////////////////////////////////////////////////////////////////////////////////

// BlockMetadata is the response of GET blocks/{blockID}/metadata.
type BlockMetadata struct {
	BlockID                  string                    `json:"blockId"`
	BlockState               *BlockState               `json:"blockState,omitempty"`
	TransactionState         *TransactionState         `json:"transactionState,omitempty"`
	BlockFailureReason       *BlockFailureReason       `json:"blockFailureReason,omitempty"`
	TransactionFailureReason *TransactionFailureReason `json:"transactionFailureReason,omitempty"`
}

// BlockChildrenResponse is the response of GET blocks/{blockID}/children.
type BlockChildrenResponse struct {
	BlockID    string   `json:"blockId"`
	MaxResults int      `json:"maxResults"`
	Count      int      `json:"count"`
	Children   []string `json:"children"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BlockState ///////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// BlockStatePending means the block is stored but not confirmed.
	BlockStatePending BlockState = iota

	// BlockStateConfirmed means the block is confirmed with the first level of knowledge.
	BlockStateConfirmed

	// BlockStateFinalized means the block is included and can no longer be reverted.
	BlockStateFinalized

	// BlockStateRejected means the block is rejected by the node, and the payload should be reissued.
	BlockStateRejected

	// BlockStateFailed means the block is not successfully issued due to a failure reason.
	BlockStateFailed
)

// BlockState describes the state of a block.
type BlockState uint8

// String returns a human readable representation of the BlockState.
func (b BlockState) String() string {
	if name, exists := blockStateNames[b]; exists {
		return name
	}
	return "Unknown"
}

var blockStateNames = map[BlockState]string{
	BlockStatePending:   "Pending",
	BlockStateConfirmed: "Confirmed",
	BlockStateFinalized: "Finalized",
	BlockStateRejected:  "Rejected",
	BlockStateFailed:    "Failed",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionState /////////////////////////////////////////////////////////////////////////////////////////////

const (
	// TransactionStatePending means the transaction is stored but not confirmed.
	TransactionStatePending TransactionState = iota

	// TransactionStateConfirmed means the transaction is confirmed with the first level of knowledge.
	TransactionStateConfirmed

	// TransactionStateFinalized means the transaction is included and can no longer be reverted.
	TransactionStateFinalized

	// TransactionStateFailed means the transaction is not successfully issued due to a failure reason.
	TransactionStateFailed
)

// TransactionState describes the state of a transaction.
type TransactionState uint8

// String returns a human readable representation of the TransactionState.
func (t TransactionState) String() string {
	if name, exists := transactionStateNames[t]; exists {
		return name
	}
	return "Unknown"
}

var transactionStateNames = map[TransactionState]string{
	TransactionStatePending:   "Pending",
	TransactionStateConfirmed: "Confirmed",
	TransactionStateFinalized: "Finalized",
	TransactionStateFailed:    "Failed",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BlockFailureReason ///////////////////////////////////////////////////////////////////////////////////////////

const (
	// BlockFailureTooOldToIssue means the block is too old to issue.
	BlockFailureTooOldToIssue BlockFailureReason = iota + 1

	// BlockFailureParentTooOld means one of the block's parents is too old.
	BlockFailureParentTooOld

	// BlockFailureParentDoesNotExist means one of the block's parents does not exist.
	BlockFailureParentDoesNotExist

	// BlockFailureParentInvalid means one of the block's parents is invalid.
	BlockFailureParentInvalid

	// BlockFailureDroppedDueToCongestion means the block is dropped due to congestion.
	BlockFailureDroppedDueToCongestion

	// BlockFailureInvalid means the block is invalid.
	BlockFailureInvalid
)

// BlockFailureReason describes the reason of a block failure.
type BlockFailureReason uint8

// String returns a human readable representation of the BlockFailureReason.
func (b BlockFailureReason) String() string {
	if description, exists := blockFailureReasonDescriptions[b]; exists {
		return description
	}
	return "unknown failure reason"
}

var blockFailureReasonDescriptions = map[BlockFailureReason]string{
	BlockFailureTooOldToIssue:          "The block is too old to issue.",
	BlockFailureParentTooOld:           "One of the block's parents is too old.",
	BlockFailureParentDoesNotExist:     "One of the block's parents does not exist.",
	BlockFailureParentInvalid:          "One of the block's parents is invalid.",
	BlockFailureDroppedDueToCongestion: "The block is dropped due to congestion.",
	BlockFailureInvalid:                "The block is invalid.",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionFailureReason /////////////////////////////////////////////////////////////////////////////////////

const (
	// TxFailureInputUTXOAlreadySpent means the referenced UTXO was already spent.
	TxFailureInputUTXOAlreadySpent TransactionFailureReason = iota + 1

	// TxFailureConflictingWithAnotherTx means the transaction lost a double spend against another transaction.
	TxFailureConflictingWithAnotherTx

	// TxFailureInvalidReferencedUTXO means the referenced UTXO is invalid.
	TxFailureInvalidReferencedUTXO

	// TxFailureInvalidTransaction means the transaction is invalid.
	TxFailureInvalidTransaction

	// TxFailureSumInputsOutputsAmountMismatch means the sum of the inputs and output base token amount does not match.
	TxFailureSumInputsOutputsAmountMismatch

	// TxFailureInvalidUnlockBlockSignature means the unlock block signature is invalid.
	TxFailureInvalidUnlockBlockSignature

	// TxFailureTimelockNotExpired means the configured timelock is not yet expired.
	TxFailureTimelockNotExpired

	// TxFailureInvalidNativeTokens means the given native tokens are invalid.
	TxFailureInvalidNativeTokens

	// TxFailureStorageDepositReturnUnfulfilled means the return amount in a transaction is not fulfilled by the
	// output side.
	TxFailureStorageDepositReturnUnfulfilled

	// TxFailureInvalidInputUnlock means an input unlock was invalid.
	TxFailureInvalidInputUnlock

	// TxFailureInvalidInputsCommitment means the inputs commitment is invalid.
	TxFailureInvalidInputsCommitment

	// TxFailureSenderNotUnlocked means the output contains a Sender with an address which is not unlocked.
	TxFailureSenderNotUnlocked

	// TxFailureInvalidChainStateTransition means the chain state transition is invalid.
	TxFailureInvalidChainStateTransition

	// TxFailureInvalidTransactionIssuingTime means the referenced input is created after the transaction issuing time.
	TxFailureInvalidTransactionIssuingTime

	// TxFailureInvalidManaAmount means the mana amount is invalid.
	TxFailureInvalidManaAmount

	// TxFailureInvalidBlockIssuanceCreditsAmount means the Block Issuance Credits amount is invalid.
	TxFailureInvalidBlockIssuanceCreditsAmount

	// TxFailureInvalidRewardContextInput means the Reward Context Input is invalid.
	TxFailureInvalidRewardContextInput

	// TxFailureInvalidCommitmentContextInput means the Commitment Context Input is invalid.
	TxFailureInvalidCommitmentContextInput

	// TxFailureMissingStakingFeature means the Staking Feature is not provided in the account output when claiming
	// rewards.
	TxFailureMissingStakingFeature

	// TxFailureFailedToClaimStakingReward means the staking reward could not be claimed.
	TxFailureFailedToClaimStakingReward

	// TxFailureFailedToClaimDelegationReward means the delegation reward could not be claimed.
	TxFailureFailedToClaimDelegationReward

	// TxFailureSemanticValidationFailed means the semantic validation failed for a reason not covered by the other
	// reasons.
	TxFailureSemanticValidationFailed TransactionFailureReason = 255
)

// TransactionFailureReason describes the reason of a transaction failure.
type TransactionFailureReason uint8

// String returns a human readable representation of the TransactionFailureReason.
func (t TransactionFailureReason) String() string {
	if description, exists := txFailureReasonDescriptions[t]; exists {
		return description
	}
	return "unknown failure reason"
}

var txFailureReasonDescriptions = map[TransactionFailureReason]string{
	TxFailureInputUTXOAlreadySpent:             "The referenced UTXO was already spent.",
	TxFailureConflictingWithAnotherTx:          "The transaction is conflicting with another transaction.",
	TxFailureInvalidReferencedUTXO:             "The referenced UTXO is invalid.",
	TxFailureInvalidTransaction:                "The transaction is invalid.",
	TxFailureSumInputsOutputsAmountMismatch:    "The sum of the inputs and output base token amount does not match.",
	TxFailureInvalidUnlockBlockSignature:       "The unlock block signature is invalid.",
	TxFailureTimelockNotExpired:                "The configured timelock is not yet expired.",
	TxFailureInvalidNativeTokens:               "The given native tokens are invalid.",
	TxFailureStorageDepositReturnUnfulfilled:   "The return amount in a transaction is not fulfilled by the output side.",
	TxFailureInvalidInputUnlock:                "An input unlock was invalid.",
	TxFailureInvalidInputsCommitment:           "The inputs commitment is invalid.",
	TxFailureSenderNotUnlocked:                 "The output contains a Sender with an address which is not unlocked.",
	TxFailureInvalidChainStateTransition:       "The chain state transition is invalid.",
	TxFailureInvalidTransactionIssuingTime:     "The referenced input is created after the transaction issuing time.",
	TxFailureInvalidManaAmount:                 "The mana amount is invalid.",
	TxFailureInvalidBlockIssuanceCreditsAmount: "The Block Issuance Credits amount is invalid.",
	TxFailureInvalidRewardContextInput:         "The Reward Context Input is invalid.",
	TxFailureInvalidCommitmentContextInput:     "The Commitment Context Input is invalid.",
	TxFailureMissingStakingFeature:             "The Staking Feature is not provided in the account output when claiming rewards.",
	TxFailureFailedToClaimStakingReward:        "Failed to claim the staking reward.",
	TxFailureFailedToClaimDelegationReward:     "Failed to claim the delegation reward.",
	TxFailureSemanticValidationFailed:          "The semantic validation failed.",
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
