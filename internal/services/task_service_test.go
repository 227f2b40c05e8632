package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-task-api/internal/constants"
)

func TestTaskService_CreateAppendsAfterSeeds(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)

	first, err := env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: client.ID, Title: "Extra"})
	require.NoError(t, err)
	assert.Equal(t, len(constants.SeedTaskTitles), first.Order)
	assert.Equal(t, constants.TaskStatusPending, first.Status)

	second, err := env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: client.ID, Title: "Another", Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, first.Order+1, second.Order)
	assert.Equal(t, "in_progress", second.Status)

	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, tasks, len(constants.SeedTaskTitles)+2)
	assert.Equal(t, "Another", tasks[len(tasks)-1].Title)
}

func TestTaskService_CreateAfterDeleteUsesMax(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)
	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)

	// Removing a middle task leaves a gap; the next order still follows the max
	require.NoError(t, env.tasks.DeleteTask(ctx, tasks[3].ID))

	created, err := env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: client.ID, Title: "Next"})
	require.NoError(t, err)
	assert.Equal(t, len(constants.SeedTaskTitles), created.Order)
}

func TestTaskService_CreateValidation(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	_, err := env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: "", Title: "x"})
	assert.ErrorIs(t, err, ErrClientIDRequired)

	_, err = env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: "c", Title: " "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.tasks.CreateTask(ctx, CreateTaskInput{ClientID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestTaskService_Update(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)
	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)
	target := tasks[0]

	status := constants.TaskStatusCompleted
	updated, err := env.tasks.UpdateTask(ctx, target.ID, UpdateTaskInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusCompleted, updated.Status)
	assert.Equal(t, target.Title, updated.Title)
	assert.Equal(t, target.Order, updated.Order)

	_, err = env.tasks.UpdateTask(ctx, target.ID, UpdateTaskInput{})
	assert.ErrorIs(t, err, ErrNoFieldsProvided)

	_, err = env.tasks.UpdateTask(ctx, "missing", UpdateTaskInput{Status: &status})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_DeleteCascadesComments(t *testing.T) {
	env := setupClientTestEnv(t)
	ctx := context.Background()

	client, err := env.clients.CreateClient(ctx, CreateClientInput{Name: "Acme", CreatorID: env.author.ID})
	require.NoError(t, err)
	tasks, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)

	for _, text := range []string{"one", "two"} {
		_, err := env.comments.CreateComment(ctx, CreateCommentInput{TaskID: tasks[0].ID, Text: text, Author: env.author})
		require.NoError(t, err)
	}

	require.NoError(t, env.tasks.DeleteTask(ctx, tasks[0].ID))

	comments, err := env.comments.ListComments(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	remaining, err := env.tasks.ListTasks(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, len(constants.SeedTaskTitles)-1)

	assert.ErrorIs(t, env.tasks.DeleteTask(ctx, tasks[0].ID), ErrTaskNotFound)
}

func TestTaskService_ListUnknownClient(t *testing.T) {
	env := setupClientTestEnv(t)

	tasks, err := env.tasks.ListTasks(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
