package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/repository"
	"github.com/yukikurage/client-task-api/internal/testutil"
	"github.com/yukikurage/client-task-api/internal/utils"
	"gorm.io/gorm"
)

func createClient(t *testing.T, store repository.Store, name string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, CreatedBy: "user-1"}
	require.NoError(t, store.Clients().Create(client))
	return client
}

func createTask(t *testing.T, store repository.Store, clientID string, order int) *models.Task {
	t.Helper()
	task := &models.Task{ClientID: clientID, Title: "task", Status: "pending", Order: order}
	require.NoError(t, store.Tasks().Create(task))
	return task
}

func TestTaskRepository_MaxOrder(t *testing.T) {
	store := testutil.NewStore(t)
	tasks := store.Tasks()
	acme := createClient(t, store, "Acme")
	other := createClient(t, store, "Other")

	highest, err := tasks.MaxOrder(acme.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, highest)

	require.NoError(t, tasks.CreateBatch([]models.Task{
		{ClientID: acme.ID, Title: "a", Status: "pending", Order: 0},
		{ClientID: acme.ID, Title: "b", Status: "pending", Order: 4},
		{ClientID: other.ID, Title: "c", Status: "pending", Order: 9},
	}))

	highest, err = tasks.MaxOrder(acme.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, highest)
}

func TestTaskRepository_UniqueOrderPerClient(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")
	other := createClient(t, store, "Other")

	createTask(t, store, acme.ID, 0)
	createTask(t, store, other.ID, 0)

	err := store.Tasks().Create(&models.Task{ClientID: acme.ID, Title: "dup", Status: "pending", Order: 0})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTaskRepository_RequiresExistingClient(t *testing.T) {
	store := testutil.NewStore(t)

	err := store.Tasks().Create(&models.Task{ClientID: "missing", Title: "x", Status: "pending"})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestTaskRepository_UpdateMissingTask(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")
	task := createTask(t, store, acme.ID, 0)

	require.NoError(t, store.Tasks().Delete(task.ID))

	task.Status = "completed"
	err := store.Tasks().Update(task)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = store.Tasks().FindByID(task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_UpdateWritesFields(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")
	task := createTask(t, store, acme.ID, 3)

	task.Title = "renamed"
	task.Status = "completed"
	require.NoError(t, store.Tasks().Update(task))

	stored, err := store.Tasks().FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Title)
	assert.Equal(t, "completed", stored.Status)
	assert.Equal(t, 3, stored.Order)
}

func TestClientRepository_UpdateMissingClient(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")

	require.NoError(t, store.Clients().Delete(acme.ID))

	acme.Name = "Back again"
	err := store.Clients().Update(acme)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	clients, err := store.Clients().List(utils.FullList())
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestTaskRepository_CountByClientAndStatus(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")

	require.NoError(t, store.Tasks().CreateBatch([]models.Task{
		{ClientID: acme.ID, Title: "a", Status: "pending", Order: 0},
		{ClientID: acme.ID, Title: "b", Status: "completed", Order: 1},
		{ClientID: acme.ID, Title: "c", Status: "completed", Order: 2},
	}))

	rows, err := store.Tasks().CountByClientAndStatus()
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, row := range rows {
		assert.Equal(t, acme.ID, row.ClientID)
		counts[row.Status] = row.Count
	}
	assert.Equal(t, map[string]int64{"pending": 1, "completed": 2}, counts)
}

func TestCommentRepository_DeleteByTaskIDs(t *testing.T) {
	store := testutil.NewStore(t)
	comments := store.Comments()
	acme := createClient(t, store, "Acme")
	t1 := createTask(t, store, acme.ID, 0)
	t2 := createTask(t, store, acme.ID, 1)
	t3 := createTask(t, store, acme.ID, 2)

	for _, taskID := range []string{t1.ID, t1.ID, t2.ID, t3.ID} {
		require.NoError(t, comments.Create(&models.Comment{TaskID: taskID, UserID: "u", Username: "u", Text: "x"}))
	}

	removed, err := comments.DeleteByTaskIDs(nil)
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = comments.DeleteByTaskIDs([]string{t1.ID, t2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	left, err := comments.ListByTask(t3.ID)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestCommentRepository_RequiresExistingTask(t *testing.T) {
	store := testutil.NewStore(t)

	err := store.Comments().Create(&models.Comment{TaskID: "missing", UserID: "u", Username: "u", Text: "x"})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestClientDelete_StoreCascadesToTasksAndComments(t *testing.T) {
	store := testutil.NewStore(t)
	acme := createClient(t, store, "Acme")
	task := createTask(t, store, acme.ID, 0)
	require.NoError(t, store.Comments().Create(&models.Comment{TaskID: task.ID, UserID: "u", Username: "u", Text: "x"}))

	require.NoError(t, store.Clients().Delete(acme.ID))

	ids, err := store.Tasks().IDsByClient(acme.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	left, err := store.Comments().ListByTask(task.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := testutil.NewStore(t)

	err := store.Transaction(func(tx repository.Store) error {
		require.NoError(t, tx.Clients().Create(&models.Client{Name: "Ghost", CreatedBy: "u"}))
		return gorm.ErrInvalidData
	})
	assert.ErrorIs(t, err, gorm.ErrInvalidData)

	clients, err := store.Clients().List(utils.FullList())
	require.NoError(t, err)
	assert.Empty(t, clients)
}
