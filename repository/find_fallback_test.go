package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func taskDoc(id string, ts time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "userId", Value: "user-1"},
		{Key: "title", Value: "task " + id},
		{Key: "completed", Value: false},
		{Key: "timestamp", Value: primitive.NewDateTimeFromTime(ts)},
	}
}

// When the sorted query fails, the plain query plus the client-side sort
// must yield the same newest-first sequence the indexed path returns.
func TestGetUserTasksSortedQueryFallback(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mt.Run("fallback matches indexed ordering", func(mt *mtest.T) {
		// Sorted query fails, bare requery returns documents oldest first.
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    291,
				Name:    "NoQueryExecutionPlans",
				Message: "error processing query: no suitable index",
			}),
			mtest.CreateCursorResponse(0, "suapa.tasks", mtest.FirstBatch,
				taskDoc("oldest", base.Add(-2*time.Hour)),
				taskDoc("middle", base.Add(-time.Hour)),
				taskDoc("newest", base),
			),
		)

		repo := &TasksRepo{MongoCollection: mt.Coll}
		tasks, err := repo.GetUserTasks(context.Background(), "user-1")
		if err != nil {
			mt.Fatalf("GetUserTasks: %v", err)
		}

		want := []string{"newest", "middle", "oldest"}
		if len(tasks) != len(want) {
			mt.Fatalf("len(tasks) = %d, want %d", len(tasks), len(want))
		}
		for i, id := range want {
			if tasks[i].TaskID != id {
				mt.Errorf("tasks[%d].TaskID = %q, want %q", i, tasks[i].TaskID, id)
			}
		}
	})

	mt.Run("indexed path passes through", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "suapa.tasks", mtest.FirstBatch,
				taskDoc("newest", base),
				taskDoc("middle", base.Add(-time.Hour)),
				taskDoc("oldest", base.Add(-2*time.Hour)),
			),
		)

		repo := &TasksRepo{MongoCollection: mt.Coll}
		tasks, err := repo.GetUserTasks(context.Background(), "user-1")
		if err != nil {
			mt.Fatalf("GetUserTasks: %v", err)
		}

		want := []string{"newest", "middle", "oldest"}
		for i, id := range want {
			if tasks[i].TaskID != id {
				mt.Errorf("tasks[%d].TaskID = %q, want %q", i, tasks[i].TaskID, id)
			}
		}
	})

	mt.Run("both queries failing surfaces the error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code: 291, Name: "NoQueryExecutionPlans", Message: "no suitable index",
			}),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code: 13, Name: "Unauthorized", Message: "not authorized",
			}),
		)

		repo := &TasksRepo{MongoCollection: mt.Coll}
		if _, err := repo.GetUserTasks(context.Background(), "user-1"); err == nil {
			mt.Error("expected error when both queries fail")
		}
	})
}
