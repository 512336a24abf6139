package solana

import "errors"

var (
	ErrBorrowConflict     = errors.New("account data already borrowed")
	ErrArithmeticOverflow = errors.New("lamport balance overflow")
	ErrAccountClosed      = errors.New("account already closed")
)

// Account is the view of one storage record the host hands a program for the
// duration of a single invocation. The host guarantees the invocation is
// single-threaded and atomic; the borrow bookkeeping here only enforces the
// shared/exclusive discipline within the invocation. A conflicting borrow is
// an error, never a wait.
type Account struct {
	key      Pubkey
	owner    Pubkey
	lamports uint64
	data     []byte
	signer   bool
	writable bool

	sharedBorrows int
	mutBorrowed   bool
}

func NewAccount(key, owner Pubkey, lamports uint64, data []byte, signer, writable bool) *Account {
	return &Account{
		key:      key,
		owner:    owner,
		lamports: lamports,
		data:     data,
		signer:   signer,
		writable: writable,
	}
}

func (a *Account) Key() Pubkey      { return a.key }
func (a *Account) Owner() Pubkey    { return a.owner }
func (a *Account) Lamports() uint64 { return a.lamports }
func (a *Account) DataLen() int     { return len(a.data) }
func (a *Account) IsSigner() bool   { return a.signer }
func (a *Account) IsWritable() bool { return a.writable }

func (a *Account) IsOwnedBy(program Pubkey) bool {
	return a.owner == program
}

func (a *Account) SetLamports(lamports uint64) {
	a.lamports = lamports
}

// AddLamports credits the account, failing on u64 overflow instead of
// wrapping.
func (a *Account) AddLamports(amount uint64) error {
	if a.lamports+amount < a.lamports {
		return ErrArithmeticOverflow
	}
	a.lamports += amount
	return nil
}

// BorrowData takes a shared borrow of the account data. The returned release
// func must be called when the view is no longer needed.
func (a *Account) BorrowData() ([]byte, func(), error) {
	if a.mutBorrowed {
		return nil, nil, ErrBorrowConflict
	}
	a.sharedBorrows++
	released := false
	return a.data, func() {
		if !released {
			released = true
			a.sharedBorrows--
		}
	}, nil
}

// BorrowMutData takes the exclusive borrow of the account data.
func (a *Account) BorrowMutData() ([]byte, func(), error) {
	if a.mutBorrowed || a.sharedBorrows > 0 {
		return nil, nil, ErrBorrowConflict
	}
	a.mutBorrowed = true
	released := false
	return a.data, func() {
		if !released {
			released = true
			a.mutBorrowed = false
		}
	}, nil
}

// Close releases the account's storage: data is dropped, the balance is
// zeroed and ownership reverts to the system program. The deposit must be
// moved elsewhere before closing or it is burned.
func (a *Account) Close() error {
	if a.mutBorrowed || a.sharedBorrows > 0 {
		return ErrBorrowConflict
	}
	if a.data == nil && a.owner == SystemProgramID {
		return ErrAccountClosed
	}
	a.data = nil
	a.lamports = 0
	a.owner = SystemProgramID
	return nil
}
