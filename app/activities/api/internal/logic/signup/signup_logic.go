// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package signup

import (
	"context"
	"errors"
	"fmt"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"
	"school-activities/app/activities/model"
	"school-activities/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

const errMsgEmailRequired = "email is required"

type SignupLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Sign a student up for an activity
func NewSignupLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupLogic {
	return &SignupLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SignupLogic) Signup(req *types.SignupRequest) (*types.SignupResponse, error) {
	if req.Email == "" {
		return nil, errorx.ErrInvalidParams(errMsgEmailRequired)
	}

	if err := l.svcCtx.Registry.Signup(l.ctx, req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrAlreadySignedUp):
			return nil, errorx.ErrAlreadySignedUp()
		default:
			l.Errorf("signup failed: activity=%q, email=%q, err=%v", req.ActivityName, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	l.Infof("signed up: activity=%q, email=%q", req.ActivityName, req.Email)
	return &types.SignupResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.ActivityName),
	}, nil
}
