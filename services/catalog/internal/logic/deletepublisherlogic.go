package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeletePublisherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeletePublisherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeletePublisherLogic {
	return &DeletePublisherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeletePublisherLogic) DeletePublisher(req *types.IdPath) error {
	if err := l.svcCtx.Catalog.DeletePublisher(l.ctx, req.Id); err != nil {
		return err
	}
	l.Infof("publisher deleted: id=%d", req.Id)
	return nil
}
