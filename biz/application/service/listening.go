package service

import (
	"context"
	"errors"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/basic"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/listening"
	"listening-show/biz/infrastructure/repository/student"
	"listening-show/biz/infrastructure/util/log"
	"listening-show/biz/infrastructure/util/page"
	"listening-show/biz/infrastructure/util/week"
	"math"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("listening-show/biz/application/service")

type IListeningService interface {
	Submit(ctx context.Context, req *show.SubmitListeningReq) (*show.ListeningInfo, error)
	List(ctx context.Context, req *show.ListListeningReq) (*show.ListListeningResp, error)
	CurrentWeek(ctx context.Context, req *show.CurrentWeekReq) (*show.CurrentWeekResp, error)
}

type ListeningService struct {
	Config          *config.Config
	ListeningMapper listening.IMongoMapper
	StudentMapper   student.IMongoMapper
	Clock           func() time.Time `wire:"-"`
}

var ListeningServiceSet = wire.NewSet(
	wire.Struct(new(ListeningService), "*"),
	wire.Bind(new(IListeningService), new(*ListeningService)),
)

// Submit 记录本周的一行听力成绩
func (s *ListeningService) Submit(ctx context.Context, req *show.SubmitListeningReq) (*show.ListeningInfo, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	score, err := parseScore(req.Score)
	if err != nil {
		return nil, err
	}

	l, stu, err := s.AppendRow(ctx, meta, req.StudentId, req.Row, score, req.Comments)
	if err != nil {
		return nil, err
	}
	return toListeningInfo(l, stu.Name), nil
}

// AppendRow 找到(或创建)学生当前周的记录并追加一行.
// 创建时的唯一索引冲突和保存时的版本冲突都会重新读取后重试, 超过次数返回 ErrTransient.
func (s *ListeningService) AppendRow(ctx context.Context, actor *basic.UserMeta, studentID, rowLabel string, score int64, comments string) (*listening.Listening, *student.Student, error) {
	ctx, span := tracer.Start(ctx, "ListeningService.AppendRow", trace.WithAttributes(
		attribute.String("student_id", studentID),
		attribute.String("row", rowLabel),
	))
	defer span.End()

	row, ok := listening.ParseRow(rowLabel)
	if !ok {
		return nil, nil, consts.ErrInvalidRow
	}
	if score < consts.MinScore || score > consts.MaxScore {
		return nil, nil, consts.ErrInvalidScore
	}

	stu, err := s.authorizedStudent(ctx, actor, studentID)
	if err != nil {
		return nil, nil, err
	}
	if stu.ClassDay == nil {
		return nil, nil, consts.ErrInvalidClassDay
	}
	window, err := week.Resolve(s.now(), int(*stu.ClassDay))
	if err != nil {
		return nil, nil, consts.ErrInvalidClassDay
	}

	entry := listening.NewEntry(row, score, comments)
	for attempt := 1; attempt <= s.maxAttempts(); attempt++ {
		l, err := s.findOrCreate(ctx, studentID, window, actor.GetUserId())
		if err != nil {
			return nil, nil, err
		}
		if l.HasRow(row) {
			return nil, nil, consts.ErrDuplicateRow
		}
		if l.Full(consts.MaxRowsPerWeek) {
			return nil, nil, consts.ErrCapacityExceeded
		}

		l.Rows = append(l.Rows, entry)
		err = s.ListeningMapper.Save(ctx, l)
		switch {
		case err == nil:
			return l, stu, nil
		case errors.Is(err, consts.ErrConflict):
			log.CtxInfo(ctx, "save listening conflict, student=%s, week=%s, attempt=%d", studentID, window.Start, attempt)
			continue
		default:
			log.CtxError(ctx, "save listening fail: %v", err)
			return nil, nil, consts.ErrSubmitListening
		}
	}
	log.CtxError(ctx, "save listening gave up after %d attempts, student=%s", s.maxAttempts(), studentID)
	return nil, nil, consts.ErrTransient
}

// findOrCreate 创建冲突说明其他请求已建好本周记录, 重新读取即可
func (s *ListeningService) findOrCreate(ctx context.Context, studentID string, window week.Window, createdBy string) (*listening.Listening, error) {
	l, err := s.ListeningMapper.FindByStudentAndWeek(ctx, studentID, window.Start)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, consts.ErrNotFound) {
		log.CtxError(ctx, "find listening fail: %v", err)
		return nil, consts.ErrSubmitListening
	}

	l, err = s.ListeningMapper.Create(ctx, studentID, window.Start, window.End, createdBy)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, consts.ErrConflict) {
		log.CtxError(ctx, "create listening fail: %v", err)
		return nil, consts.ErrSubmitListening
	}

	log.CtxInfo(ctx, "listening already created concurrently, student=%s, week=%s", studentID, window.Start)
	l, err = s.ListeningMapper.FindByStudentAndWeek(ctx, studentID, window.Start)
	if err != nil {
		log.CtxError(ctx, "refetch listening fail: %v", err)
		return nil, consts.ErrTransient
	}
	return l, nil
}

// List 按周倒序列出学生的记录, 未分页时返回全部
func (s *ListeningService) List(ctx context.Context, req *show.ListListeningReq) (*show.ListListeningResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	stu, err := s.authorizedStudent(ctx, meta, req.StudentId)
	if err != nil {
		return nil, err
	}

	data, err := s.ListeningMapper.FindByStudent(ctx, req.StudentId)
	if err != nil {
		log.CtxError(ctx, "list listening fail: %v", err)
		return nil, consts.ErrGetListening
	}
	return &show.ListListeningResp{
		Weeks: lo.Map(page.Slice(data, req.PaginationOptions), func(l *listening.Listening, _ int) *show.ListeningInfo {
			return toListeningInfo(l, stu.Name)
		}),
		Total: int64(len(data)),
	}, nil
}

// CurrentWeek 返回当前周区间及已有记录, 不会创建记录
func (s *ListeningService) CurrentWeek(ctx context.Context, req *show.CurrentWeekReq) (*show.CurrentWeekResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	stu, err := s.authorizedStudent(ctx, meta, req.StudentId)
	if err != nil {
		return nil, err
	}
	if stu.ClassDay == nil {
		return nil, consts.ErrInvalidClassDay
	}
	window, err := week.Resolve(s.now(), int(*stu.ClassDay))
	if err != nil {
		return nil, consts.ErrInvalidClassDay
	}

	resp := &show.CurrentWeekResp{
		WeekStart: window.Start,
		WeekEnd:   window.End,
	}
	l, err := s.ListeningMapper.FindByStudentAndWeek(ctx, req.StudentId, window.Start)
	switch {
	case err == nil:
		resp.Week = toListeningInfo(l, stu.Name)
	case errors.Is(err, consts.ErrNotFound):
	default:
		log.CtxError(ctx, "find listening fail: %v", err)
		return nil, consts.ErrGetListening
	}
	return resp, nil
}

// authorizedStudent 教师可操作任意学生, 家长/学生账号只能操作自己名下的学生
func (s *ListeningService) authorizedStudent(ctx context.Context, actor *basic.UserMeta, studentID string) (*student.Student, error) {
	if studentID == "" {
		return nil, consts.ErrInvalidParams
	}
	stu, err := s.StudentMapper.FindOne(ctx, studentID)
	switch {
	case err == nil:
	case errors.Is(err, consts.ErrNotFound), errors.Is(err, consts.ErrInvalidObjectId):
		return nil, consts.ErrNotFound
	default:
		log.CtxError(ctx, "find student fail: %v", err)
		return nil, consts.ErrCall
	}
	if actor.GetRole() != consts.RoleInstructor && stu.OwnerID != actor.GetUserId() {
		return nil, consts.ErrForbidden
	}
	return stu, nil
}

func (s *ListeningService) now() time.Time {
	loc := s.Config.Location()
	if s.Clock != nil {
		return s.Clock().In(loc)
	}
	return time.Now().In(loc)
}

func (s *ListeningService) maxAttempts() int {
	if s.Config == nil || s.Config.Listening.MaxAttempts <= 0 {
		return consts.DefaultMaxAttempts
	}
	return s.Config.Listening.MaxAttempts
}

// parseScore 接受整数或整数形式的字符串
func parseScore(v any) (int64, error) {
	switch t := v.(type) {
	case nil, bool:
		return 0, consts.ErrInvalidScore
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, consts.ErrInvalidScore
		}
		v = strings.TrimSpace(t)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, consts.ErrInvalidScore
	}
	if f < consts.MinScore || f > consts.MaxScore {
		return 0, consts.ErrInvalidScore
	}
	return int64(f), nil
}

func toListeningInfo(l *listening.Listening, studentName string) *show.ListeningInfo {
	return &show.ListeningInfo{
		Id:          l.ID.Hex(),
		StudentId:   l.StudentID,
		StudentName: studentName,
		WeekStart:   l.WeekStart,
		WeekEnd:     l.WeekEnd,
		Rows: lo.Map(l.Rows, func(e listening.Entry, _ int) *show.RowInfo {
			return &show.RowInfo{
				Row:      string(e.Row),
				Score:    e.Score,
				Comments: e.Comments,
			}
		}),
		CreatedBy:  l.CreatedBy,
		CreateTime: l.CreateTime,
		UpdateTime: l.UpdateTime,
	}
}
