package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetPublisherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPublisherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPublisherLogic {
	return &GetPublisherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPublisherLogic) GetPublisher(req *types.IdPath) (*types.CompanyResponse, error) {
	v, err := l.svcCtx.Catalog.GetPublisher(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	resp := companyToResponse(v)
	return &resp, nil
}
