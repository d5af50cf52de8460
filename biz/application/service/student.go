package service

import (
	"context"
	"errors"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/batch"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/repository/user"
	"listening-show/biz/infrastructure/util/log"
	"listening-show/biz/infrastructure/util/week"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/spf13/cast"
)

type IStudentService interface {
	CreateStudent(ctx context.Context, req *show.CreateStudentReq) (*show.StudentInfo, error)
	ListStudents(ctx context.Context, req *show.ListStudentsReq) (*show.ListStudentsResp, error)
	UpdateStudent(ctx context.Context, req *show.UpdateStudentReq) (*show.StudentInfo, error)
	DeleteStudent(ctx context.Context, req *show.IdReq) (*show.StudentInfo, error)
}

type StudentService struct {
	StudentMapper student.IMongoMapper
	BatchMapper   batch.IMongoMapper
	UserMapper    user.IMongoMapper
}

var StudentServiceSet = wire.NewSet(
	wire.Struct(new(StudentService), "*"),
	wire.Bind(new(IStudentService), new(*StudentService)),
)

// CreateStudent 新建学生, 仅教师可操作
func (s *StudentService) CreateStudent(ctx context.Context, req *show.CreateStudentReq) (*show.StudentInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	stu := new(student.Student)
	if err := s.fill(ctx, stu, req); err != nil {
		return nil, err
	}
	if err := s.StudentMapper.Insert(ctx, stu); err != nil {
		log.CtxError(ctx, "create student fail: %v", err)
		return nil, consts.ErrCreateStudent
	}
	return toStudentInfo(stu, ""), nil
}

// ListStudents 列出全部学生并带上班次名称
func (s *StudentService) ListStudents(ctx context.Context, _ *show.ListStudentsReq) (*show.ListStudentsResp, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	students, err := s.StudentMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "list students fail: %v", err)
		return nil, consts.ErrGetStudentList
	}

	batchNames := make(map[string]string)
	infos := make([]*show.StudentInfo, 0, len(students))
	for _, stu := range students {
		name, ok := batchNames[stu.BatchID]
		if !ok && stu.BatchID != "" {
			if b, err := s.BatchMapper.FindOne(ctx, stu.BatchID); err == nil {
				name = b.Name
			} else {
				log.CtxInfo(ctx, "batch %s of student %s not found: %v", stu.BatchID, stu.ID.Hex(), err)
			}
			batchNames[stu.BatchID] = name
		}
		infos = append(infos, toStudentInfo(stu, name))
	}
	return &show.ListStudentsResp{
		Students: infos,
		Total:    int64(len(infos)),
	}, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, req *show.UpdateStudentReq) (*show.StudentInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	stu, err := s.StudentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, notFoundOr(ctx, err, "find student")
	}
	if err = s.fill(ctx, stu, &req.CreateStudentReq); err != nil {
		return nil, err
	}
	if err = s.StudentMapper.Update(ctx, stu); err != nil {
		return nil, notFoundOr(ctx, err, "update student")
	}
	return toStudentInfo(stu, ""), nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, req *show.IdReq) (*show.StudentInfo, error) {
	if err := requireInstructor(ctx); err != nil {
		return nil, err
	}
	stu, err := s.StudentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, notFoundOr(ctx, err, "find student")
	}
	if err = s.StudentMapper.Delete(ctx, req.Id); err != nil {
		return nil, notFoundOr(ctx, err, "delete student")
	}
	return toStudentInfo(stu, ""), nil
}

// fill 校验请求并写入 stu
func (s *StudentService) fill(ctx context.Context, stu *student.Student, req *show.CreateStudentReq) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || !student.ValidLevel(req.Level) {
		return consts.ErrInvalidParams
	}
	dob, err := cast.ToTimeE(strings.TrimSpace(req.Dob))
	if err != nil || dob.IsZero() || dob.After(time.Now()) {
		return consts.ErrInvalidParams
	}
	classDay, err := parseClassDay(req.ClassDay)
	if err != nil {
		return err
	}
	if req.BatchId != "" {
		if _, err = s.BatchMapper.FindOne(ctx, req.BatchId); err != nil {
			return notFoundOr(ctx, err, "find batch")
		}
	}
	if req.OwnerId != "" {
		if _, err = s.UserMapper.FindOne(ctx, req.OwnerId); err != nil {
			return notFoundOr(ctx, err, "find owner")
		}
	}

	stu.Name = name
	stu.Dob = dob
	stu.Level = req.Level
	stu.BatchID = req.BatchId
	stu.ClassDay = classDay
	stu.OwnerID = req.OwnerId
	return nil
}

// parseClassDay 为空表示未设置, 否则必须是 0-6 的整数
func parseClassDay(v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	if str, ok := v.(string); ok {
		if strings.TrimSpace(str) == "" {
			return nil, nil
		}
		v = strings.TrimSpace(str)
	}
	if _, ok := v.(bool); ok {
		return nil, consts.ErrInvalidClassDay
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f != float64(int64(f)) || !week.ValidAnchorDay(int(f)) {
		return nil, consts.ErrInvalidClassDay
	}
	day := int64(f)
	return &day, nil
}

func toStudentInfo(stu *student.Student, batchName string) *show.StudentInfo {
	info := new(show.StudentInfo)
	_ = copier.Copy(info, stu)
	info.Id = stu.ID.Hex()
	info.BatchId = stu.BatchID
	info.BatchName = batchName
	info.OwnerId = stu.OwnerID
	return info
}

func requireInstructor(ctx context.Context) error {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleInstructor {
		return consts.ErrForbidden
	}
	return nil
}

// notFoundOr 未找到或 id 非法统一视为 NotFound, 其余错误记录日志后返回 ErrCall
func notFoundOr(ctx context.Context, err error, action string) error {
	if errors.Is(err, consts.ErrNotFound) || errors.Is(err, consts.ErrInvalidObjectId) {
		return consts.ErrNotFound
	}
	log.CtxError(ctx, "%s fail: %v", action, err)
	return consts.ErrCall
}
