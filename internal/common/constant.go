// Package common contains shared constants and sentinel errors used across
// the warranty functions.
package common

// Stream change kinds as delivered by the record store.
const (
	ChangeInsert = "INSERT"
	ChangeModify = "MODIFY"
	ChangeRemove = "REMOVE"
)

// Log attribute keys identifying a warranty record.
const (
	LogKeyTransactionID = "transaction_id"
	LogKeyProductNumber = "product_number"
)
