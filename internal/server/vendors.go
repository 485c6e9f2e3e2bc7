package server

import (
	"context"

	quotespb "github.com/Akash-sopho/email-extractor-agent/gen/proto/quotes/v1"
	"github.com/Akash-sopho/email-extractor-agent/internal/common"
	"github.com/Akash-sopho/email-extractor-agent/internal/utils"
)

func (s *QuotesService) ListVendors(ctx context.Context, req *quotespb.ListVendorsRequest) (*quotespb.ListVendorsResponse, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		s.logger.Error("list vendors failed", "error", err)
		return nil, common.InternalError("list vendors failed")
	}

	out := make([]*quotespb.Vendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, utils.ToPBVendor(v))
	}
	return &quotespb.ListVendorsResponse{Vendors: out}, nil
}
