package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListPublishersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListPublishersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListPublishersLogic {
	return &ListPublishersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListPublishersLogic) ListPublishers() (*types.CompanyListResponse, error) {
	views, err := l.svcCtx.Catalog.ListPublishers(l.ctx)
	if err != nil {
		return nil, err
	}
	return companiesToList(views), nil
}
