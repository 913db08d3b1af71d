package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Posting rules. A credit card balance is debt owed, so an expense charged to
// it grows the balance instead of shrinking it, and a transfer into it (a bill
// payment) shrinks the balance instead of growing it:
//
//	income   -> source += amount
//	expense  -> source -= amount   (credit_card: source += amount)
//	transfer -> source -= amount; destination += amount
//	                               (credit_card dest: destination -= amount)

// SourceDelta returns the signed balance change the transaction applies to its
// source account.
func SourceDelta(txType TransactionType, amount decimal.Decimal, source AccountType) (decimal.Decimal, error) {
	switch txType {
	case TransactionIncome:
		return amount, nil
	case TransactionExpense:
		if source.IsLiability() {
			return amount, nil // debt grows
		}
		return amount.Neg(), nil
	case TransactionTransfer:
		// The source always pays out, whatever its type.
		return amount.Neg(), nil
	}
	return decimal.Zero, fmt.Errorf("unknown transaction type %q", txType)
}

// DestinationDelta returns the signed balance change a transfer applies to its
// destination account.
func DestinationDelta(amount decimal.Decimal, dest AccountType) decimal.Decimal {
	if dest.IsLiability() {
		return amount.Neg() // paying down the card
	}
	return amount
}

// PostingDeltas computes the net balance change per account for applying txn.
// dest must be non-nil iff txn is a transfer.
func PostingDeltas(txn Transaction, source Account, dest *Account) (map[string]decimal.Decimal, error) {
	srcDelta, err := SourceDelta(txn.Type, txn.Amount, source.Type)
	if err != nil {
		return nil, err
	}

	deltas := map[string]decimal.Decimal{source.AccountID: srcDelta}
	if txn.Type == TransactionTransfer {
		if dest == nil {
			return nil, fmt.Errorf("transfer %s has no destination account", txn.TransactionID)
		}
		deltas[dest.AccountID] = deltas[dest.AccountID].Add(DestinationDelta(txn.Amount, dest.Type))
	}
	return deltas, nil
}

// ReversalDeltas computes the exact inverse of PostingDeltas, used when a
// transaction is deleted. Applying PostingDeltas followed by ReversalDeltas is
// a net no-op on every touched balance.
func ReversalDeltas(txn Transaction, source Account, dest *Account) (map[string]decimal.Decimal, error) {
	deltas, err := PostingDeltas(txn, source, dest)
	if err != nil {
		return nil, err
	}
	for id, d := range deltas {
		deltas[id] = d.Neg()
	}
	return deltas, nil
}
