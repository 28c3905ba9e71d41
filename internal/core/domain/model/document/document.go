// Package document provides the Document entity: append-only metadata for a
// file attached to an order. The bytes themselves live in the external
// document store under the entity's storage key.
package document

import (
	"errors"
	"strings"
	"time"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through the NewDocument or RestoreDocument factory methods.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument constructor")

// Document references one stored file of an order. Documents are append-only
// and the storage key is unique and immutable once written.
type Document struct {
	id         kernel.UUID
	orderID    kernel.UUID
	fileName   string
	storageKey string
	uploadedBy kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewDocument creates a document record for a file just written to the store.
func NewDocument(
	id kernel.UUID,
	orderID kernel.UUID,
	fileName string,
	storageKey string,
	uploadedBy kernel.UUID,
) (*Document, error) {
	d := &Document{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFileName(fileName),
		d.setStorageKey(storageKey),
		d.setUploadedBy(uploadedBy),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument reconstructs a document record from persistence.
func RestoreDocument(
	id kernel.UUID,
	orderID kernel.UUID,
	fileName string,
	storageKey string,
	uploadedBy kernel.UUID,
	createdAt time.Time,
) (*Document, error) {
	d := &Document{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFileName(fileName),
		d.setStorageKey(storageKey),
		d.setUploadedBy(uploadedBy),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Document instance was created through a factory method.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}

	return nil
}

// ID returns the document identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the owning order.
func (d *Document) OrderID() kernel.UUID {
	return d.orderID
}

// FileName returns the original file name as uploaded.
func (d *Document) FileName() string {
	return d.fileName
}

// StorageKey returns the immutable key of the bytes in the document store.
func (d *Document) StorageKey() string {
	return d.storageKey
}

// UploadedBy returns the identity that attached the file.
func (d *Document) UploadedBy() kernel.UUID {
	return d.uploadedBy
}

// CreatedAt returns when the document was attached.
func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Document) setFileName(fileName string) error {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	d.fileName = fileName
	return nil
}

func (d *Document) setStorageKey(storageKey string) error {
	if storageKey == "" {
		return errs.NewValueIsRequiredError("storage key")
	}
	d.storageKey = storageKey
	return nil
}

func (d *Document) setUploadedBy(uploadedBy kernel.UUID) error {
	if err := uploadedBy.Validate(); err != nil {
		return err
	}
	d.uploadedBy = uploadedBy
	return nil
}
