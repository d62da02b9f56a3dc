package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteGenreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteGenreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteGenreLogic {
	return &DeleteGenreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteGenreLogic) DeleteGenre(req *types.IdPath) error {
	if err := l.svcCtx.Catalog.DeleteGenre(l.ctx, req.Id); err != nil {
		return err
	}
	l.Infof("genre deleted: id=%d", req.Id)
	return nil
}
