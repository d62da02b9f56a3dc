package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteDeveloperLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteDeveloperLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteDeveloperLogic {
	return &DeleteDeveloperLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteDeveloperLogic) DeleteDeveloper(req *types.IdPath) error {
	if err := l.svcCtx.Catalog.DeleteDeveloper(l.ctx, req.Id); err != nil {
		return err
	}
	l.Infof("developer deleted: id=%d", req.Id)
	return nil
}
