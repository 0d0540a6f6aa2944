package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewAssignOrderNumberCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderNumberCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, id, cmd.OrderID())
}

func TestNewAssignOrderNumberCommand_InvalidID(t *testing.T) {
	_, err := commands.NewAssignOrderNumberCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestAssignOrderNumberCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AssignOrderNumberCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignOrderNumberCommandIsNotConstructed)
}
