// AngelaMos | 2026
// service_test.go

package todo

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/todoapp/internal/core"
	"github.com/angelamos/todoapp/internal/middleware"
)

type fakeRepository struct {
	todos  map[int64]Todo
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{todos: map[int64]Todo{}, nextID: 1}
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	ownerID int64,
) ([]Todo, error) {
	result := []Todo{}
	for _, t := range f.todos {
		if t.OwnerID == ownerID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]Todo, error) {
	result := []Todo{}
	for _, t := range f.todos {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeRepository) GetByIDForOwner(
	_ context.Context,
	id, ownerID int64,
) (*Todo, error) {
	t, ok := f.todos[id]
	if !ok || t.OwnerID != ownerID {
		return nil, core.ErrNotFound
	}
	return &t, nil
}

func (f *fakeRepository) Create(_ context.Context, todo *Todo) error {
	todo.ID = f.nextID
	f.nextID++
	f.todos[todo.ID] = *todo
	return nil
}

func (f *fakeRepository) Update(_ context.Context, todo *Todo) error {
	existing, ok := f.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return core.ErrNotFound
	}
	f.todos[todo.ID] = *todo
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id, ownerID int64) error {
	t, ok := f.todos[id]
	if !ok || t.OwnerID != ownerID {
		return core.ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

var (
	alice = middleware.Identity{Username: "alice", UserID: 1, Role: "user"}
	bob   = middleware.Identity{Username: "bob", UserID: 2, Role: "user"}
)

func seedTodo(t *testing.T, svc *Service, owner middleware.Identity, title string) *Todo {
	t.Helper()

	todo, err := svc.Create(context.Background(), owner, TodoRequest{
		Title:       title,
		Description: "some description",
		Priority:    3,
	})
	require.NoError(t, err)
	return todo
}

func TestCreateSetsOwner(t *testing.T) {
	svc := NewService(newFakeRepository())

	todo := seedTodo(t, svc, alice, "buy milk")

	assert.Equal(t, alice.UserID, todo.OwnerID)
	assert.NotZero(t, todo.ID)
}

func TestListScopedToOwner(t *testing.T) {
	svc := NewService(newFakeRepository())

	seedTodo(t, svc, alice, "alice one")
	seedTodo(t, svc, alice, "alice two")
	seedTodo(t, svc, bob, "bob one")

	aliceTodos, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, aliceTodos, 2)
	for _, todo := range aliceTodos {
		assert.Equal(t, alice.UserID, todo.OwnerID)
	}

	bobTodos, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, bobTodos, 1)
	assert.Equal(t, "bob one", bobTodos[0].Title)
}

func TestListAllCrossesOwners(t *testing.T) {
	svc := NewService(newFakeRepository())

	seedTodo(t, svc, alice, "alice one")
	seedTodo(t, svc, bob, "bob one")

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetInvisibleAcrossOwners(t *testing.T) {
	svc := NewService(newFakeRepository())

	created := seedTodo(t, svc, alice, "alice only")

	got, err := svc.Get(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// a valid id owned by someone else is indistinguishable from a
	// missing one
	_, err = svc.Get(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created := seedTodo(t, svc, alice, "original title")

	updated, err := svc.Update(context.Background(), alice, created.ID, TodoRequest{
		Title:       "new title",
		Description: "new description",
		Priority:    5,
		Complete:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, 5, updated.Priority)
	assert.True(t, updated.Complete)
	assert.Equal(t, alice.UserID, updated.OwnerID)

	stored := repo.todos[created.ID]
	assert.Equal(t, "new title", stored.Title)
}

func TestUpdateNotOwned(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created := seedTodo(t, svc, alice, "alice only")

	_, err := svc.Update(context.Background(), bob, created.ID, TodoRequest{
		Title:       "hijacked",
		Description: "should not land",
		Priority:    1,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)

	stored := repo.todos[created.ID]
	assert.Equal(t, "alice only", stored.Title)
}

func TestDeleteNotOwned(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created := seedTodo(t, svc, alice, "alice only")

	err := svc.Delete(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Contains(t, repo.todos, created.ID)

	err = svc.Delete(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, repo.todos, created.ID)
}
