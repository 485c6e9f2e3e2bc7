package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Akash-sopho/email-extractor-agent/gen/ent"
	"github.com/Akash-sopho/email-extractor-agent/gen/ent/vendor"
)

type VendorRepository interface {
	// Upsert looks a vendor up by domain first, then by name, backfilling
	// whichever of the two the stored record is missing. A populated field is
	// never overwritten. Creates a new record when neither key matches.
	Upsert(ctx context.Context, name, domain *string) (uuid.UUID, error)
	List(ctx context.Context) ([]*ent.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{
		client: client,
		logger: logger,
	}
}

func (r *vendorRepository) Upsert(ctx context.Context, name, domain *string) (uuid.UUID, error) {
	name = nonEmpty(name)
	domain = nonEmpty(domain)

	if domain != nil {
		v, err := r.client.Vendor.Query().Where(vendor.Domain(*domain)).Only(ctx)
		if err == nil {
			if name != nil && v.Name == nil {
				if _, err := r.client.Vendor.UpdateOne(v).SetName(*name).Save(ctx); err != nil {
					return uuid.Nil, err
				}
				r.logger.Debug("vendor name backfilled", "vendor_id", v.ID, "name", *name)
			}
			return v.ID, nil
		}
		if !ent.IsNotFound(err) {
			return uuid.Nil, err
		}
	}

	if name != nil {
		v, err := r.client.Vendor.Query().Where(vendor.Name(*name)).Only(ctx)
		if err == nil {
			if domain != nil && v.Domain == nil {
				if _, err := r.client.Vendor.UpdateOne(v).SetDomain(*domain).Save(ctx); err != nil {
					return uuid.Nil, err
				}
				r.logger.Debug("vendor domain backfilled", "vendor_id", v.ID, "domain", *domain)
			}
			return v.ID, nil
		}
		if !ent.IsNotFound(err) {
			return uuid.Nil, err
		}
	}

	v, err := r.client.Vendor.Create().
		SetNillableName(name).
		SetNillableDomain(domain).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create vendor", "error", err)
		return uuid.Nil, err
	}
	r.logger.Info("vendor created", "vendor_id", v.ID)
	return v.ID, nil
}

func (r *vendorRepository) List(ctx context.Context) ([]*ent.Vendor, error) {
	vendors, err := r.client.Vendor.Query().Order(vendor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}
	return vendors, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
