// Package services holds the credential and inventory stores of agrostock.
//
// Both are stateless over the persisted blobs: every call reads the current
// JSON document from the repositories, and every write rewrites a whole
// collection through an atomic kv.Store.Update. Writers are additionally
// serialised by a per-service mutex.
//
// Failures are *common.AppError values matched with errors.Is against
// common.ErrValidation, ErrConflict, ErrNotFound, ErrAuth and ErrStorage.
package services
