package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users(nil)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "user_alice", Email: "alice@example.com", PasswordHash: "h"}))

	got, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_alice", got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: "user_alice2", Email: "alice@example.com"}), repository.ErrEmailTaken)
	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: "user_alice", Email: "alice@other.org"}), repository.ErrUserIDTaken)

	_, err = users.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStore_TodosAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	todos := NewStore().Todos(nil)

	desc := "2 litres"
	milk := &entity.Todo{Title: "Buy milk", Description: &desc, UserID: "user_alice"}
	require.NoError(t, todos.Create(ctx, milk))
	dog := &entity.Todo{Title: "Walk dog", UserID: "user_alice"}
	require.NoError(t, todos.Create(ctx, dog))
	assert.Less(t, milk.ID, dog.ID)

	list, err := todos.ListByOwner(ctx, "user_alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Buy milk", list[0].Title)

	list, err = todos.ListByOwner(ctx, "user_bob")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = todos.GetByOwner(ctx, "user_bob", milk.ID)
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	_, err = todos.UpdateByOwner(ctx, "user_bob", milk.ID, entity.TodoPatch{Completed: entity.Some(true)})
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.ErrorIs(t, todos.DeleteByOwner(ctx, "user_bob", milk.ID), repository.ErrTodoNotFound)

	got, err := todos.GetByOwner(ctx, "user_alice", milk.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	todos := NewStore().Todos(nil)

	desc := "2 litres"
	milk := &entity.Todo{Title: "Buy milk", Description: &desc, UserID: "user_alice"}
	require.NoError(t, todos.Create(ctx, milk))

	updated, err := todos.UpdateByOwner(ctx, "user_alice", milk.ID, entity.TodoPatch{Completed: entity.Some(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "2 litres", *updated.Description)

	// returned values must not alias stored state
	*updated.Description = "changed"
	again, err := todos.GetByOwner(ctx, "user_alice", milk.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 litres", *again.Description)

	require.NoError(t, todos.DeleteByOwner(ctx, "user_alice", milk.ID))
	_, err = todos.GetByOwner(ctx, "user_alice", milk.ID)
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
}
