package commands_test

import (
	"testing"

	"expertise/internal/core/application/usecases/commands"
	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) actor.Actor {
	t.Helper()
	client, err := actor.NewActor(kernel.NewUUID(), actor.Client)
	require.NoError(t, err)
	return client
}

func newOperator(t *testing.T) actor.Actor {
	t.Helper()
	operator, err := actor.NewActor(kernel.NewUUID(), actor.Operator)
	require.NoError(t, err)
	return operator
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	client := newClient(t)
	cmd, err := commands.NewCreateOrderCommand(id, client, "Contract review", "Two leases attached")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, client, cmd.Client())
	assert.Equal(t, "Contract review", cmd.Title())
	assert.Equal(t, "Two leases attached", cmd.Description())
}

func TestNewCreateOrderCommand_TrimsTitleAndDescription(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newClient(t), "  Contract review  ", "  notes  ")
	require.NoError(t, err)
	assert.Equal(t, "Contract review", cmd.Title())
	assert.Equal(t, "notes", cmd.Description())
}

func TestNewCreateOrderCommand_EmptyDescriptionAllowed(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newClient(t), "Contract review", "")
	require.NoError(t, err)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, newClient(t), "Contract review", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newClient(t), "   ", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor.Actor{}, "Contract review", "")
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
