package model

import (
	"fmt"

	"github.com/hance08/teller/internal/money"
)

// OperationResult is the outcome of a single deposit or withdrawal. Callers
// switch over the concrete types below; no other implementations exist.
type OperationResult interface {
	Succeeded() bool
	isOperationResult()
}

type DepositSuccess struct {
	NewBalance money.Money
}

type DepositFailed struct {
	Reason string
}

type WithdrawalSuccess struct {
	NewBalance money.Money
}

type WithdrawalFailed struct {
	Reason string
}

type InsufficientFunds struct {
	Available money.Money
	Requested money.Money
}

type ViolatesMinimumBalance struct {
	Minimum          money.Money
	ResultingBalance money.Money
}

func (DepositSuccess) Succeeded() bool         { return true }
func (DepositFailed) Succeeded() bool          { return false }
func (WithdrawalSuccess) Succeeded() bool      { return true }
func (WithdrawalFailed) Succeeded() bool       { return false }
func (InsufficientFunds) Succeeded() bool      { return false }
func (ViolatesMinimumBalance) Succeeded() bool { return false }

func (DepositSuccess) isOperationResult()         {}
func (DepositFailed) isOperationResult()          {}
func (WithdrawalSuccess) isOperationResult()      {}
func (WithdrawalFailed) isOperationResult()       {}
func (InsufficientFunds) isOperationResult()      {}
func (ViolatesMinimumBalance) isOperationResult() {}

func (r DepositSuccess) String() string {
	return fmt.Sprintf("deposit succeeded, new balance %s", r.NewBalance)
}

func (r DepositFailed) String() string {
	return fmt.Sprintf("deposit failed: %s", r.Reason)
}

func (r WithdrawalSuccess) String() string {
	return fmt.Sprintf("withdrawal succeeded, new balance %s", r.NewBalance)
}

func (r WithdrawalFailed) String() string {
	return fmt.Sprintf("withdrawal failed: %s", r.Reason)
}

func (r InsufficientFunds) String() string {
	return fmt.Sprintf("insufficient funds: available %s, requested %s", r.Available, r.Requested)
}

func (r ViolatesMinimumBalance) String() string {
	return fmt.Sprintf("violates minimum balance: minimum %s, resulting balance %s", r.Minimum, r.ResultingBalance)
}

// TransferResult is the outcome of moving funds between two accounts.
type TransferResult interface {
	Succeeded() bool
	isTransferResult()
}

type TransferCompleted struct {
	SourceBalance      money.Money
	DestinationBalance money.Money
}

// TransferRejected carries the failing leg's result in Cause when the
// rejection came from one of the accounts; Cause is nil otherwise.
type TransferRejected struct {
	Reason string
	Cause  OperationResult
}

func (TransferCompleted) Succeeded() bool { return true }
func (TransferRejected) Succeeded() bool  { return false }

func (TransferCompleted) isTransferResult() {}
func (TransferRejected) isTransferResult()  {}

func (r TransferCompleted) String() string {
	return fmt.Sprintf("transfer completed: source %s, destination %s", r.SourceBalance, r.DestinationBalance)
}

func (r TransferRejected) String() string {
	if r.Cause != nil {
		return fmt.Sprintf("transfer rejected: %s (%v)", r.Reason, r.Cause)
	}
	return fmt.Sprintf("transfer rejected: %s", r.Reason)
}
