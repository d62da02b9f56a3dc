package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreatePublisherLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreatePublisherLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreatePublisherLogic {
	return &CreatePublisherLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreatePublisherLogic) CreatePublisher(req *types.CompanyRequest) (*types.CompanyResponse, error) {
	v, err := l.svcCtx.Catalog.CreatePublisher(l.ctx, companyInput(req))
	if err != nil {
		return nil, err
	}
	l.Infof("publisher created: id=%d name=%q", v.ID, v.Name)
	resp := companyToResponse(v)
	return &resp, nil
}
