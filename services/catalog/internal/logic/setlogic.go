package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// SetLogic serves the string set and the boolean counting map.
type SetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SetLogic {
	return &SetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SetLogic) AddString(v string) (*types.ScratchAddResponse, error) {
	n, err := l.svcCtx.Scratch.StringSet.Add(v)
	if err != nil {
		return nil, err
	}
	return &types.ScratchAddResponse{Message: "String added to the set", TotalItems: n}, nil
}

func (l *SetLogic) Strings() (*types.ScratchListResponse, error) {
	all := l.svcCtx.Scratch.StringSet.All()
	return &types.ScratchListResponse{Items: all, Count: len(all)}, nil
}

func (l *SetLogic) ClearStrings() (*types.MessageResponse, error) {
	l.svcCtx.Scratch.StringSet.Clear()
	return &types.MessageResponse{Message: "String set cleared"}, nil
}

func (l *SetLogic) AddBoolean(v bool) (*types.ScratchAddResponse, error) {
	n := l.svcCtx.Scratch.BooleanMap.Add(v)
	return &types.ScratchAddResponse{Message: "Boolean counted", TotalItems: n}, nil
}

func (l *SetLogic) Booleans() (*types.BooleanMapResponse, error) {
	counts := l.svcCtx.Scratch.BooleanMap.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}
	return &types.BooleanMapResponse{BooleanMap: counts, Count: total}, nil
}

func (l *SetLogic) ClearBooleans() (*types.MessageResponse, error) {
	l.svcCtx.Scratch.BooleanMap.Clear()
	return &types.MessageResponse{Message: "Boolean map cleared"}, nil
}
