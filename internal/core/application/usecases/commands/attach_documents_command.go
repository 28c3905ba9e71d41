package commands

import (
	"errors"
	"strings"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var (
	ErrAttachDocumentsCommandIsNotConstructed = errors.New(
		"AttachDocumentsCommand must be created via NewAttachDocumentsCommand constructor",
	)
	ErrFilesAreRequired   = errors.New("at least one file is required")
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileDataIsRequired = errors.New("file data is required")
)

// FileUpload carries one file received from the transport layer.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// AttachDocumentsCommand represents a request to attach one or more files to
// an order. Files are processed independently: each one either lands fully
// (bytes stored, row committed) or fails without affecting its siblings.
type AttachDocumentsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	uploader actor.Actor
	files    []FileUpload

	guard guard.ConstructorGuard
}

// NewAttachDocumentsCommand creates a command to attach files to an order.
// Validates that at least one file is given and that every file has a
// non-empty name and non-empty data.
func NewAttachDocumentsCommand(
	orderID kernel.UUID,
	uploader actor.Actor,
	files []FileUpload,
) (AttachDocumentsCommand, error) {
	cmd := AttachDocumentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUploader(uploader),
		cmd.setFiles(files),
	); err != nil {
		return AttachDocumentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachDocumentsCommandIsNotConstructed if validation fails.
func (c AttachDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentsCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AttachDocumentsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Uploader returns the actor attaching the files.
func (c AttachDocumentsCommand) Uploader() actor.Actor {
	return c.uploader
}

// Files returns the files to attach, in upload order.
func (c AttachDocumentsCommand) Files() []FileUpload {
	return c.files
}

func (c *AttachDocumentsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachDocumentsCommand) setUploader(uploader actor.Actor) error {
	if err := uploader.Validate(); err != nil {
		return err
	}

	c.uploader = uploader
	return nil
}

func (c *AttachDocumentsCommand) setFiles(files []FileUpload) error {
	if len(files) == 0 {
		return ErrFilesAreRequired
	}

	validated := make([]FileUpload, 0, len(files))

	for _, file := range files {
		file.Name = strings.TrimSpace(file.Name)
		if file.Name == "" {
			return ErrFileNameIsRequired
		}

		if len(file.Data) == 0 {
			return ErrFileDataIsRequired
		}

		validated = append(validated, file)
	}

	c.files = validated
	return nil
}
