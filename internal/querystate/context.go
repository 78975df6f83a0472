package querystate

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

type contextKey string

const filterKey contextKey = "doctor_filter"

// NewContext returns a copy of ctx carrying filter.
func NewContext(ctx context.Context, filter entity.DoctorFilter) context.Context {
	return context.WithValue(ctx, filterKey, filter)
}

// FromContext returns the filter stored by NewContext.
func FromContext(ctx context.Context) (entity.DoctorFilter, bool) {
	filter, ok := ctx.Value(filterKey).(entity.DoctorFilter)
	return filter, ok
}
