package abl

import "unsafe"

// record is any fixed-layout account state with an initialization marker.
type record interface {
	IsInitialized() bool
}

// loadUnchecked reinterprets data in place as a *T without copying. The
// buffer must be exactly the record's length; its bytes become the record's
// fields directly, so writes through the returned pointer land in the
// account buffer. This function and load below are the only unsafe code in
// the module; every other component consumes the typed views they return.
func loadUnchecked[T any](data []byte) (*T, error) {
	var zero T
	if len(data) != int(unsafe.Sizeof(zero)) {
		return nil, ErrInvalidAccountData
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(data))), nil
}

// load is loadUnchecked plus the initialization check: zeroed or
// half-written storage is rejected as ErrInvalidAccountData rather than
// handed out as a typed record. Mutability follows the buffer: a view over
// a mutably borrowed buffer may be written through.
func load[T any, P interface {
	*T
	record
}](data []byte) (*T, error) {
	t, err := loadUnchecked[T](data)
	if err != nil {
		return nil, err
	}
	if !P(t).IsInitialized() {
		return nil, ErrInvalidAccountData
	}
	return t, nil
}

// LoadListConfig returns a typed view over an initialized ListConfig
// buffer. The view aliases data; it is valid only while data is.
func LoadListConfig(data []byte) (*ListConfig, error) {
	return load[ListConfig](data)
}

// LoadWalletEntry returns a typed view over an initialized WalletEntry
// buffer. The view aliases data; it is valid only while data is.
func LoadWalletEntry(data []byte) (*WalletEntry, error) {
	return load[WalletEntry](data)
}
