// Package server assembles the domain handlers into the BuilderService.
package server

import (
	categoryH "github.com/fekuna/omnipos-storefront-service/internal/category/handler"
	contentH "github.com/fekuna/omnipos-storefront-service/internal/content/handler"
	orderingH "github.com/fekuna/omnipos-storefront-service/internal/ordering/handler"
	pageH "github.com/fekuna/omnipos-storefront-service/internal/page/handler"
	productH "github.com/fekuna/omnipos-storefront-service/internal/product/handler"
	siteH "github.com/fekuna/omnipos-storefront-service/internal/site/handler"
	builderv1 "github.com/fekuna/omnipos-storefront-service/pkg/pb/builderv1"
	"google.golang.org/grpc"
)

type BuilderServer struct {
	*orderingH.OrderingHandler
	*contentH.ContentHandler
	*siteH.SiteHandler
	*productH.ProductHandler
	*categoryH.CategoryHandler
	*pageH.PageHandler
}

var _ builderv1.BuilderServiceServer = (*BuilderServer)(nil)

type Handlers struct {
	Ordering *orderingH.OrderingHandler
	Content  *contentH.ContentHandler
	Site     *siteH.SiteHandler
	Product  *productH.ProductHandler
	Category *categoryH.CategoryHandler
	Page     *pageH.PageHandler
}

func NewBuilderServer(h Handlers) *BuilderServer {
	return &BuilderServer{
		OrderingHandler: h.Ordering,
		ContentHandler:  h.Content,
		SiteHandler:     h.Site,
		ProductHandler:  h.Product,
		CategoryHandler: h.Category,
		PageHandler:     h.Page,
	}
}

func (s *BuilderServer) Register(r grpc.ServiceRegistrar) {
	builderv1.RegisterBuilderServiceServer(r, s)
}
