package common

import "errors"

// Callers should match these with errors.Is; stages wrap them with detail.
var (
	// Certificate pipeline stages.
	ErrAssetFetch  = errors.New("asset fetch failed")
	ErrFormat      = errors.New("invalid date format")
	ErrRender      = errors.New("table render failed")
	ErrCompose     = errors.New("document compose failed")
	ErrEncryption  = errors.New("document encryption failed")
	ErrStorage     = errors.New("certificate storage failed")
	ErrIndexUpdate = errors.New("record index update failed")

	// A stream image lacks its composite key.
	ErrInvalidRecord = errors.New("invalid warranty record")

	// Configuration faults.
	ErrMissingOwnerPassword = errors.New("owner password is not configured")
	ErrMissingSetting       = errors.New("required setting is missing")

	// Record store.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Intake / retrieval.
	ErrValidation = errors.New("validation error")
	ErrPresign    = errors.New("presign failed")
)
