package service

import (
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/batch"
	"listening-show/biz/infrastructure/repository/student"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBatchLifecycle(t *testing.T) {
	students := student.NewMemoryMapper()
	svc := &BatchService{
		BatchMapper:   batch.NewMemoryMapper(),
		StudentMapper: students,
	}
	ctx := instructorCtx()

	amy := &student.Student{Name: "Amy", Dob: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), Level: "Basic"}
	ben := &student.Student{Name: "Ben", Dob: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), Level: "Basic"}
	require.NoError(t, students.Insert(ctx, amy))
	require.NoError(t, students.Insert(ctx, ben))

	info, err := svc.CreateBatch(ctx, &show.CreateBatchReq{
		Name:     "Weekend",
		Schedule: "Sat 10:00",
		Students: []string{amy.ID.Hex(), ben.ID.Hex(), amy.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, adaptor.ExtractUserMeta(ctx).UserId, info.InstructorId)
	assert.Equal(t, []*show.StudentBrief{
		{Id: amy.ID.Hex(), Name: "Amy"},
		{Id: ben.ID.Hex(), Name: "Ben"},
	}, info.Students)

	// 已删除的学生不再出现在班次里
	require.NoError(t, students.Delete(ctx, ben.ID.Hex()))
	resp, err := svc.ListBatches(ctx, &show.ListBatchesReq{})
	require.NoError(t, err)
	require.Len(t, resp.Batches, 1)
	assert.Len(t, resp.Batches[0].Students, 1)

	updated, err := svc.UpdateBatch(ctx, &show.UpdateBatchReq{
		Id:             info.Id,
		CreateBatchReq: show.CreateBatchReq{Name: "Weekend B", Schedule: "Sun 10:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekend B", updated.Name)
	assert.Empty(t, updated.Students)

	_, err = svc.DeleteBatch(ctx, &show.IdReq{Id: info.Id})
	require.NoError(t, err)
	_, err = svc.DeleteBatch(ctx, &show.IdReq{Id: info.Id})
	assert.ErrorIs(t, err, consts.ErrNotFound)
}

func TestCreateBatchValidation(t *testing.T) {
	svc := &BatchService{
		BatchMapper:   batch.NewMemoryMapper(),
		StudentMapper: student.NewMemoryMapper(),
	}
	ctx := instructorCtx()

	_, err := svc.CreateBatch(ctx, &show.CreateBatchReq{Name: "", Schedule: "Mon"})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
	_, err = svc.CreateBatch(ctx, &show.CreateBatchReq{Name: "A", Schedule: " "})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
	_, err = svc.CreateBatch(ctx, &show.CreateBatchReq{
		Name:     "A",
		Schedule: "Mon",
		Students: []string{primitive.NewObjectID().Hex()},
	})
	assert.ErrorIs(t, err, consts.ErrNotFound)

	resp, err := svc.ListBatches(ctx, &show.ListBatchesReq{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
}
