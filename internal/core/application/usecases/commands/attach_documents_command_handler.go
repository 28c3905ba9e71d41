package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"expertise/internal/core/domain/model/document"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/core/ports"
	"expertise/internal/pkg/errs"
)

// AttachDocumentsCommandHandler handles attaching files to an order.
// Operators may attach to any order; a client may only attach to orders they
// own. Files commit independently, so a failed file never rolls back its
// siblings; the handler reports every failure joined into one error.
type AttachDocumentsCommandHandler struct {
	uowFactory DocumentUoWFactory
	store      ports.DocumentStore
}

// NewAttachDocumentsCommandHandler creates a handler for document attachment.
// Requires a DocumentUoWFactory and the binary document store.
func NewAttachDocumentsCommandHandler(
	uowFactory DocumentUoWFactory,
	store ports.DocumentStore,
) AttachDocumentsCommandHandler {
	return AttachDocumentsCommandHandler{
		uowFactory: uowFactory,
		store:      store,
	}
}

// Handle processes the document attachment command.
// The ownership check runs once against the current order before any bytes
// are stored. Each file then gets its own storage write and its own
// transaction; the returned error joins the failures of all files that did
// not land.
func (h AttachDocumentsCommandHandler) Handle(ctx context.Context, cmd AttachDocumentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.loadOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Uploader().IsClient() && !o.IsOwnedBy(cmd.Uploader().ID()) {
		return errs.NewOperationForbiddenError("attach documents")
	}

	var fileErrs []error

	for _, file := range cmd.Files() {
		if err = h.attachFile(ctx, o, cmd.Uploader().ID(), file); err != nil {
			fileErrs = append(fileErrs, fmt.Errorf("attach %q: %w", file.Name, err))
		}
	}

	return errors.Join(fileErrs...)
}

func (h AttachDocumentsCommandHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, orderID)
}

func (h AttachDocumentsCommandHandler) attachFile(
	ctx context.Context,
	o *order.Order,
	uploadedBy kernel.UUID,
	file FileUpload,
) error {
	storageKey, err := newStorageKey(o.ID(), file.Name)
	if err != nil {
		return err
	}

	if err = h.store.Put(ctx, storageKey, file.Data, file.ContentType); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newDocument, err := document.NewDocument(kernel.NewUUID(), o.ID(), file.Name, storageKey, uploadedBy)
	if err != nil {
		return err
	}

	if err = uow.DocumentRepository().Add(ctx, newDocument); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// newStorageKey builds a per-order key that never collides: same file name,
// same instant, still distinct thanks to the random token. The original file
// name survives only as its extension; the display name lives in the
// document row.
func newStorageKey(orderID kernel.UUID, fileName string) (string, error) {
	token := make([]byte, 4)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("generate storage key token: %w", err)
	}

	return fmt.Sprintf(
		"orders/%s/%d_%s%s",
		orderID,
		time.Now().UnixNano(),
		hex.EncodeToString(token),
		filepath.Ext(fileName),
	), nil
}
