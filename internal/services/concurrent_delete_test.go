package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-task-api/internal/constants"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/repository"
)

// interleavingStore runs a hook once, right after the first FindByID on
// clients or tasks, to simulate a concurrent request landing between a
// service's read and its write.
type interleavingStore struct {
	repository.Store
	once *sync.Once
	hook func()
}

func newInterleavingStore(store repository.Store, hook func()) *interleavingStore {
	return &interleavingStore{Store: store, once: &sync.Once{}, hook: hook}
}

func (s *interleavingStore) fire() { s.once.Do(s.hook) }

func (s *interleavingStore) WithContext(ctx context.Context) repository.Store {
	return &interleavingStore{Store: s.Store.WithContext(ctx), once: s.once, hook: s.hook}
}

func (s *interleavingStore) Clients() repository.ClientRepository {
	return &interleavingClients{ClientRepository: s.Store.Clients(), after: s.fire}
}

func (s *interleavingStore) Tasks() repository.TaskRepository {
	return &interleavingTasks{TaskRepository: s.Store.Tasks(), after: s.fire}
}

type interleavingClients struct {
	repository.ClientRepository
	after func()
}

func (r *interleavingClients) FindByID(id string) (*models.Client, error) {
	client, err := r.ClientRepository.FindByID(id)
	r.after()
	return client, err
}

type interleavingTasks struct {
	repository.TaskRepository
	after func()
}

func (r *interleavingTasks) FindByID(id string) (*models.Task, error) {
	task, err := r.TaskRepository.FindByID(id)
	r.after()
	return task, err
}

func TestTaskService_UpdateDoesNotResurrectDeletedTask(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)
	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)

	store := newInterleavingStore(env.store, func() {
		require.NoError(t, env.clients.DeleteClient(ctx, client.ID))
	})
	svc := NewTaskService(store, env.cascade)

	completed := constants.TaskStatusCompleted
	_, err = svc.UpdateTask(ctx, tasks[0].ID, UpdateTaskInput{Status: &completed})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	left, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	_, err = env.store.Tasks().FindByID(tasks[0].ID)
	assert.Error(t, err)
}

func TestClientService_UpdateDoesNotResurrectDeletedClient(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)

	store := newInterleavingStore(env.store, func() {
		require.NoError(t, env.clients.DeleteClient(ctx, client.ID))
	})
	svc := NewClientService(store, env.cascade)

	name := "Renamed"
	_, err = svc.UpdateClient(ctx, client.ID, UpdateClientInput{Name: &name})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = env.store.Clients().FindByID(client.ID)
	assert.Error(t, err)
}

func TestCommentService_CreateOnTaskDeletedMidRequest(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)
	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)
	target := tasks[0]

	store := newInterleavingStore(env.store, func() {
		require.NoError(t, env.tasks.DeleteTask(ctx, target.ID))
	})
	svc := NewCommentService(store)

	_, err = svc.CreateComment(ctx, CreateCommentInput{TaskID: target.ID, Text: "late", Author: env.author})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	comments, err := env.comments.ListComments(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
