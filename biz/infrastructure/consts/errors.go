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

// 鉴权相关错误
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("unauthorized access"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden access"))
)

// 业务错误
var (
	ErrItemSelected     = NewErrno(codes.AlreadyExists, errors.New("Item Already Selected"))
	ErrNoSeats          = NewErrno(codes.FailedPrecondition, errors.New("no seats available"))
	ErrInvalidStatus    = NewErrno(codes.InvalidArgument, errors.New("invalid class status"))
	ErrInvalidPrice     = NewErrno(codes.InvalidArgument, errors.New("invalid price"))
	ErrEmptyCheckout    = NewErrno(codes.InvalidArgument, errors.New("no cart items to pay for"))
	ErrCreateClass      = NewErrno(codes.Internal, errors.New("failed to create class"))
	ErrAddCart          = NewErrno(codes.Internal, errors.New("Failed to add item to cart."))
	ErrGetCart          = NewErrno(codes.Internal, errors.New("Failed to retrieve selected items from cart."))
	ErrPaymentIntent    = NewErrno(codes.Unavailable, errors.New("failed to create payment intent"))
	ErrRecordPayment    = NewErrno(codes.Aborted, errors.New("failed to record payment"))
	ErrCounterUnderflow = NewErrno(codes.FailedPrecondition, errors.New("counters cannot go negative"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("An error occurred"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Internal, errors.New("update failed"))
)
