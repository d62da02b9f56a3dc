package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdatePublisherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdatePublisherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdatePublisherLogic {
	return &UpdatePublisherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdatePublisherLogic) UpdatePublisher(id uint, req *types.CompanyRequest) (*types.CompanyResponse, error) {
	v, err := l.svcCtx.Catalog.UpdatePublisher(l.ctx, id, companyInput(req))
	if err != nil {
		return nil, err
	}
	resp := companyToResponse(v)
	return &resp, nil
}
