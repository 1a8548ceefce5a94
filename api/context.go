package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/sections"
)

type keyType string

const pageKey keyType = "page"

// ctxWithPage adds the resolved page instance to the context
func ctxWithPage(ctx context.Context, page *sections.Page) context.Context {
	return context.WithValue(ctx, pageKey, page)
}

// ctxGetPage retrieves the page instance resolved by the page middleware
func ctxGetPage(ctx context.Context) (*sections.Page, error) {
	if ctxValue := ctx.Value(pageKey); ctxValue == nil {
		return nil, errors.New("page not found in context")
	} else if page, ok := ctxValue.(*sections.Page); !ok {
		return nil, errors.New("value is not of type `*sections.Page`")
	} else {
		return page, nil
	}
}
