package middleware

import (
	"net/http"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/querystate"
)

// QueryStateMiddleware decodes the request URL into a DoctorFilter once
// and provides it to handlers through the request context.
type QueryStateMiddleware struct {
}

func NewQueryStateMiddleware() *QueryStateMiddleware {
	return &QueryStateMiddleware{}
}

func (m *QueryStateMiddleware) Provide(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := querystate.Parse(r.URL.RawQuery)
		next.ServeHTTP(w, r.WithContext(querystate.NewContext(r.Context(), filter)))
	})
}

// GetFilterFromContext returns the provided filter, parsing the URL when
// the middleware did not run.
func GetFilterFromContext(r *http.Request) entity.DoctorFilter {
	if filter, ok := querystate.FromContext(r.Context()); ok {
		return filter
	}
	return querystate.Parse(r.URL.RawQuery)
}
