package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListDevelopersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListDevelopersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListDevelopersLogic {
	return &ListDevelopersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListDevelopersLogic) ListDevelopers() (*types.CompanyListResponse, error) {
	views, err := l.svcCtx.Catalog.ListDevelopers(l.ctx)
	if err != nil {
		return nil, err
	}
	return companiesToList(views), nil
}
