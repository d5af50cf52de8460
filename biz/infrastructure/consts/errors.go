package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 错误码
func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Unauthenticated, errors.New("sign in failed, check email and password"))
	ErrRepeatedSignUp    = NewErrno(codes.AlreadyExists, errors.New("email already registered"))
	ErrTooManyAttempts   = NewErrno(codes.ResourceExhausted, errors.New("too many sign in attempts, try again later"))
	ErrCreateBatch       = NewErrno(codes.Code(1015), errors.New("create batch failed"))
	ErrGetBatchList      = NewErrno(codes.Code(1016), errors.New("list batches failed"))
	ErrCreateStudent     = NewErrno(codes.Code(1017), errors.New("create student failed"))
	ErrGetStudentList    = NewErrno(codes.Code(1018), errors.New("list students failed"))
	ErrGetListening      = NewErrno(codes.Code(1019), errors.New("list listening records failed"))
	ErrSubmitListening   = NewErrno(codes.Code(1020), errors.New("submit listening row failed"))
)

// 周成绩相关错误
var (
	ErrInvalidRow       = NewErrno(codes.InvalidArgument, errors.New("row must be one of A, B, C, D, E"))
	ErrInvalidScore     = NewErrno(codes.InvalidArgument, errors.New("score must be an integer between 0 and 10"))
	ErrInvalidClassDay  = NewErrno(codes.InvalidArgument, errors.New("student class day is not set or out of range"))
	ErrDuplicateRow     = NewErrno(codes.AlreadyExists, errors.New("row already exists for this week"))
	ErrCapacityExceeded = NewErrno(codes.FailedPrecondition, errors.New("maximum 5 rows per week"))
	ErrTransient        = NewErrno(codes.Unavailable, errors.New("week record is busy, please retry"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid input"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("internal error, please retry"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrConflict        = NewErrno(codes.Aborted, errors.New("concurrent modification"))
)

// CodeOf 取出错误码, 非 Errno 视为 Unknown
func CodeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var en *Errno
	if errors.As(err, &en) {
		return en.code
	}
	return codes.Unknown
}
