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

type UnregisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Remove a student from an activity
func NewUnregisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterLogic {
	return &UnregisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UnregisterLogic) Unregister(req *types.UnregisterRequest) (*types.UnregisterResponse, error) {
	if req.Email == "" {
		return nil, errorx.ErrInvalidParams(errMsgEmailRequired)
	}

	if err := l.svcCtx.Registry.Unregister(l.ctx, req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrNotRegistered):
			return nil, errorx.ErrNotRegistered()
		default:
			l.Errorf("unregister failed: activity=%q, email=%q, err=%v", req.ActivityName, req.Email, err)
			return nil, errorx.ErrInternalError()
		}
	}

	l.Infof("unregistered: activity=%q, email=%q", req.ActivityName, req.Email)
	return &types.UnregisterResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.ActivityName),
	}, nil
}
