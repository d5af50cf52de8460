package service

import (
	"context"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/batch"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/util/log"
	"strings"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IBatchService interface {
	CreateBatch(ctx context.Context, req *show.CreateBatchReq) (*show.BatchInfo, error)
	ListBatches(ctx context.Context, req *show.ListBatchesReq) (*show.ListBatchesResp, error)
	UpdateBatch(ctx context.Context, req *show.UpdateBatchReq) (*show.BatchInfo, error)
	DeleteBatch(ctx context.Context, req *show.IdReq) (*show.BatchInfo, error)
}

type BatchService struct {
	BatchMapper   batch.IMongoMapper
	StudentMapper student.IMongoMapper
}

var BatchServiceSet = wire.NewSet(
	wire.Struct(new(BatchService), "*"),
	wire.Bind(new(IBatchService), new(*BatchService)),
)

// CreateBatch 创建班次, 创建者即为任课教师
func (s *BatchService) CreateBatch(ctx context.Context, req *show.CreateBatchReq) (*show.BatchInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	b := &batch.Batch{
		InstructorID: adaptor.ExtractUserMeta(ctx).GetUserId(),
	}
	if err := s.fill(ctx, b, req); err != nil {
		return nil, err
	}
	if err := s.BatchMapper.Insert(ctx, b); err != nil {
		log.CtxError(ctx, "create batch fail: %v", err)
		return nil, consts.ErrCreateBatch
	}
	return s.toBatchInfo(ctx, b), nil
}

func (s *BatchService) ListBatches(ctx context.Context, _ *show.ListBatchesReq) (*show.ListBatchesResp, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	batches, err := s.BatchMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "list batches fail: %v", err)
		return nil, consts.ErrGetBatchList
	}
	return &show.ListBatchesResp{
		Batches: lo.Map(batches, func(b *batch.Batch, _ int) *show.BatchInfo {
			return s.toBatchInfo(ctx, b)
		}),
		Total: int64(len(batches)),
	}, nil
}

func (s *BatchService) UpdateBatch(ctx context.Context, req *show.UpdateBatchReq) (*show.BatchInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	b, err := s.BatchMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, notFoundOr(ctx, err, "find batch")
	}
	if err = s.fill(ctx, b, &req.CreateBatchReq); err != nil {
		return nil, err
	}
	if err = s.BatchMapper.Update(ctx, b); err != nil {
		return nil, notFoundOr(ctx, err, "update batch")
	}
	return s.toBatchInfo(ctx, b), nil
}

func (s *BatchService) DeleteBatch(ctx context.Context, req *show.IdReq) (*show.BatchInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	b, err := s.BatchMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, notFoundOr(ctx, err, "find batch")
	}
	if err = s.BatchMapper.Delete(ctx, req.Id); err != nil {
		return nil, notFoundOr(ctx, err, "delete batch")
	}
	return s.toBatchInfo(ctx, b), nil
}

// fill 校验名称, 时间安排和学生 id, 学生去重后保持原顺序
func (s *BatchService) fill(ctx context.Context, b *batch.Batch, req *show.CreateBatchReq) error {
	name := strings.TrimSpace(req.Name)
	schedule := strings.TrimSpace(req.Schedule)
	if name == "" || schedule == "" {
		return consts.ErrInvalidParams
	}
	students := lo.Uniq(req.Students)
	for _, id := range students {
		if _, err := s.StudentMapper.FindOne(ctx, id); err != nil {
			return notFoundOr(ctx, err, "find student")
		}
	}
	b.Name = name
	b.Schedule = schedule
	b.Students = students
	return nil
}

func (s *BatchService) toBatchInfo(ctx context.Context, b *batch.Batch) *show.BatchInfo {
	briefs := make([]*show.StudentBrief, 0, len(b.Students))
	for _, id := range b.Students {
		stu, err := s.StudentMapper.FindOne(ctx, id)
		if err != nil {
			// 学生已被删除
			log.CtxInfo(ctx, "student %s of batch %s not found: %v", id, b.ID.Hex(), err)
			continue
		}
		briefs = append(briefs, &show.StudentBrief{Id: id, Name: stu.Name})
	}
	return &show.BatchInfo{
		Id:           b.ID.Hex(),
		Name:         b.Name,
		Schedule:     b.Schedule,
		InstructorId: b.InstructorID,
		Students:     briefs,
	}
}
