package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/cuihairu/labcatalog/internal/scratch"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// PrimitiveLogic serves the single number, string and boolean values.
type PrimitiveLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPrimitiveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PrimitiveLogic {
	return &PrimitiveLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PrimitiveLogic) Set(kind string, raw any) (*types.ScratchSetResponse, error) {
	st := l.svcCtx.Scratch
	var stored any
	switch kind {
	case "number":
		v, err := scratch.CoerceInt(raw)
		if err != nil {
			return nil, err
		}
		st.Number.Set(v)
		stored = v
	case "string":
		v, err := scratch.CoerceString(raw)
		if err != nil {
			return nil, err
		}
		st.String.Set(v)
		stored = v
	case "boolean":
		v, err := scratch.CoerceBool(raw)
		if err != nil {
			return nil, err
		}
		st.Boolean.Set(v)
		stored = v
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", kind)
	}
	return &types.ScratchSetResponse{Message: titleKind(kind) + " added successfully", Value: stored}, nil
}

// Get returns a null value when nothing is stored.
func (l *PrimitiveLogic) Get(kind string) (*types.ScratchValueResponse, error) {
	st := l.svcCtx.Scratch
	var (
		v  any
		ok bool
	)
	switch kind {
	case "number":
		v, ok = st.Number.Get()
	case "string":
		v, ok = st.String.Get()
	case "boolean":
		v, ok = st.Boolean.Get()
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", kind)
	}
	if !ok {
		v = nil
	}
	return &types.ScratchValueResponse{Value: v}, nil
}

func (l *PrimitiveLogic) Clear(kind string) (*types.MessageResponse, error) {
	st := l.svcCtx.Scratch
	switch kind {
	case "number":
		st.Number.Clear()
	case "string":
		st.String.Clear()
	case "boolean":
		st.Boolean.Clear()
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", kind)
	}
	return &types.MessageResponse{Message: titleKind(kind) + " cleared"}, nil
}

func titleKind(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
